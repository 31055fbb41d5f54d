// Command server runs the catalog API with Redis-backed response caching.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/danielevilela/go-api-boilerplate/config"
	"github.com/danielevilela/go-api-boilerplate/internal/catalog"
	"github.com/danielevilela/go-api-boilerplate/internal/handlers"
	"github.com/danielevilela/go-api-boilerplate/middlewares"
	"github.com/danielevilela/go-api-boilerplate/pkg/cache"
	"github.com/danielevilela/go-api-boilerplate/pkg/health"
	"github.com/danielevilela/go-api-boilerplate/pkg/logger"
	"github.com/danielevilela/go-api-boilerplate/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor()).
		With("app", "catalog-api", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conns := redis.MustOpenAll(ctx, cfg.Redis)

	store := cache.NewRedisStore(conns.Cache, cache.WithDefaultTTL(cfg.Cache.TTL))
	cat := catalog.New()

	apiOpts := []handlers.Option{
		handlers.WithKeyPrefix(cfg.Cache.KeyPrefix),
		handlers.WithLogger(log),
	}
	if cfg.IsDevelopment() {
		apiOpts = append(apiOpts, handlers.WithDiagnostics(store.Stats))
	}
	api := handlers.New(cat, store, apiOpts...)

	cacheMW := middlewares.Cache(store, log,
		middlewares.WithCacheTTL(cfg.Cache.TTL),
		middlewares.WithCacheKeyPrefix(cfg.Cache.KeyPrefix),
	)

	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.Logging(log),
		middlewares.Recover(log),
		middlewares.SecurityHeaders(),
		middlewares.RateLimit(conns.Cache, log,
			middlewares.WithRateLimit(cfg.RateLimit.Limit, cfg.RateLimit.Window),
		),
	)

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(health.Checks{
		"redis_cache":  redis.Healthcheck(conns.Cache),
		"redis_logs":   redis.Healthcheck(conns.Logs),
		"redis_pubsub": redis.Healthcheck(conns.PubSub),
	}, health.WithLogger(log)))

	r.Mount("/api/v1", api.Routes(cacheMW))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Background pings refresh each connection's availability so caching and
	// rate limiting recover without waiting for probe traffic.
	for _, conn := range []*redis.Conn{conns.Cache, conns.Logs, conns.PubSub} {
		conn := conn
		g.Go(func() error {
			redis.Monitor(gctx, conn, cfg.Redis.PingInterval)
			return nil
		})
	}

	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return redis.Shutdown(conns)(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
