package main

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	www "github.com/Lsnsh/www.rust-lang.org"
	"github.com/Lsnsh/www.rust-lang.org/handlers"
	"github.com/Lsnsh/www.rust-lang.org/internal/config"
	"github.com/Lsnsh/www.rust-lang.org/locales"
	"github.com/Lsnsh/www.rust-lang.org/middlewares"
	"github.com/Lsnsh/www.rust-lang.org/pkg/cache"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/logger"
	"github.com/Lsnsh/www.rust-lang.org/pkg/metrics"
	"github.com/Lsnsh/www.rust-lang.org/views"
)

// sentryFlushTimeout bounds event delivery during shutdown.
const sentryFlushTimeout = 2 * time.Second

func newServeCommand() *cobra.Command {
	var (
		flags   localeFlags
		addr    string
		version string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			log := logger.New(cfg.Log,
				middlewares.RequestIDExtractor(),
				middlewares.LocaleExtractor(),
			)

			app, err := newApp(cfg, log, handlers.WithVersion(version))
			if err != nil {
				log.Error("failed to build application", slog.Any("error", err))
				return err
			}

			return app.Run(cfg.Addr,
				www.Logger(log),
				www.ShutdownTimeout(cfg.ShutdownTimeout),
				www.WithContext(cmd.Context()),
				www.StartupHook(func(ctx context.Context) error {
					log.InfoContext(ctx, "serving localized pages",
						slog.String("default_locale", cfg.DefaultLocale.String()),
						slog.String("locales_dir", cfg.LocalesDir),
						slog.Int("page_cache", cfg.PageCache),
					)
					return nil
				}),
				www.ShutdownHook(func(ctx context.Context) error {
					return logger.Flush(ctx, sentryFlushTimeout)
				}),
			)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: :8080)")
	cmd.Flags().StringVar(&version, "release", handlers.DefaultVersion, "release advertised on the landing page")
	return cmd
}

// resources returns the resource tree selected by cfg.
func resources(cfg config.Config) fs.FS {
	if cfg.LocalesDir == "" {
		return locales.FS()
	}
	return l10n.Root(cfg.LocalesDir)
}

// newApp loads the resources and assembles the site.
func newApp(cfg config.Config, log *slog.Logger, opts ...handlers.PagesOption) (*www.App, error) {
	registry := l10n.Lazy(resources(cfg),
		l10n.WithDefaultLocale(cfg.DefaultLocale.String()),
		l10n.WithLogger(log),
	)
	reg, err := registry()
	if err != nil {
		return nil, err
	}

	rec := metrics.New()
	formatter := l10n.NewFormatter(reg,
		l10n.WithObserver(rec),
		l10n.WithFormatterLogger(log),
	)
	if cfg.PageCache > 0 {
		opts = append(opts, handlers.WithPageCache(cache.New(cache.WithMaxEntries(cfg.PageCache))))
	}
	pages := handlers.NewPages(l10n.NewResolver(reg), formatter, opts...)

	return www.New(
		www.WithLogger(log),
		www.WithMiddleware(
			middlewares.Recover(),
			middlewares.RequestID(),
		),
		www.WithErrorHandler(pages.ErrorHandler),
		www.WithNotFoundHandler(pages.NotFound),
		www.WithMethodNotAllowedHandler(pages.MethodNotAllowed),
		www.WithHealthChecks(
			www.WithReadinessCheck("locales", func(context.Context) error {
				_, err := registry()
				return err
			}),
		),
		www.WithMetrics(rec, cfg.MetricsPath),
		www.WithStaticFiles(views.AssetsPrefix, views.Assets(), "static"),
		www.WithHandlers(pages),
	), nil
}
