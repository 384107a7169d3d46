package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	ibanHandler "iban-gateway/internal/iban/handler"
	ibanMetrics "iban-gateway/internal/iban/metrics"
	"iban-gateway/internal/iban/service"
	"iban-gateway/internal/platform/config"
	"iban-gateway/internal/platform/health"
	"iban-gateway/internal/platform/httpserver"
	"iban-gateway/internal/platform/logger"
	"iban-gateway/internal/platform/metrics"
	"iban-gateway/internal/platform/tracer"
	httptransport "iban-gateway/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// run serves until ctx is done or the listener fails. Every deferred cleanup,
// including the tracer flush, has completed when it returns.
func run(ctx context.Context, cfg config.Server, log *slog.Logger, traceOpts ...sdktrace.TracerProviderOption) error {
	log.Info("initializing iban-gateway",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"batch_max_items", cfg.BatchMaxItems,
		"batch_concurrency", cfg.BatchConcurrency,
		"tracing_enabled", cfg.TracingEnabled,
	)

	registry := metrics.NewRegistry(health.Version, cfg.Environment)

	var tr tracer.Tracer = tracer.NewNoop()
	if cfg.TracingEnabled {
		tp := tracer.NewProvider(traceOpts...)
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error("tracer shutdown failed", "error", err)
			}
		}()
		tr = tracer.NewOTel(tracer.WithTracerProvider(tp))
	}

	svc := service.NewService(log,
		service.WithMetrics(ibanMetrics.New(registry)),
		service.WithTracer(tr),
		service.WithConcurrency(cfg.BatchConcurrency),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("iban", svc.Ready)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Registry:       registry,
		Health:         healthHandler,
		IBAN:           ibanHandler.New(svc, log, cfg.BatchMaxItems),
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	log.Info("starting http server", "addr", cfg.Addr)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server gracefully")
	case err := <-serverErr:
		return fmt.Errorf("serving http: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
