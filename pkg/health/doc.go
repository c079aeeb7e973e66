// Package health provides HTTP handlers for liveness and readiness probes.
//
// LivenessHandler always answers OK while the process runs. ReadinessHandler
// runs a set of named checks in parallel under a shared timeout and answers
// 503 when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "l10n": func(ctx context.Context) error {
//	        _, err := registry()
//	        return err
//	    },
//	}, health.WithTimeout(3*time.Second), health.WithLogger(log)))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// asks for JSON with an Accept: application/json header or ?format=json:
//
//	{"status":"unhealthy","checks":{"l10n":{"status":"unhealthy","error":"..."}}}
//
// Failed checks wrap ErrCheckFailed, checks that ran out of time wrap
// ErrCheckTimeout.
package health
