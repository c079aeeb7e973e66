package internal

import "github.com/Lsnsh/www.rust-lang.org/pkg/health"

const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
	defaultMetricsPath   = "/metrics"
)

type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
}

// HealthOption configures the health endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath moves the liveness endpoint. Empty keeps "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath moves the readiness endpoint. Empty keeps
// "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check. Checks run in parallel
// on every probe.
//
//	www.WithReadinessCheck("locales", func(context.Context) error {
//	    _, err := registry()
//	    return err
//	})
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		c.checks[name] = fn
	}
}
