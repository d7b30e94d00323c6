package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hireloop/cv-screener/internal/adapter/ai/openaicompat"
	"github.com/hireloop/cv-screener/internal/adapter/ai/stub"
	"github.com/hireloop/cv-screener/internal/adapter/observability"
	"github.com/hireloop/cv-screener/internal/config"
	"github.com/hireloop/cv-screener/internal/domain"
	"github.com/hireloop/cv-screener/internal/usecase"
)

// app bundles the wired pipeline shared by all subcommands.
type app struct {
	cfg      config.Config
	analyzer *usecase.Analyzer
	shutdown func(context.Context) error
}

// newApp loads configuration and wires logging, metrics, tracing, the model
// client and the analyzer.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			srv := &http.Server{
				Addr:              cfg.MetricsAddr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Warn("metrics listener stopped", slog.Any("error", err))
			}
		}()
	}

	shutdown, err := observability.SetupTracing(cfg)
	if err != nil {
		return nil, fmt.Errorf("op=main.newApp: %w", err)
	}

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("op=main.newApp: %w", err)
	}

	var client domain.ModelClient
	if cfg.ModelStub {
		slog.Info("using stub model client")
		client = stub.New()
	} else {
		client = openaicompat.New(cfg)
	}

	return &app{
		cfg:      cfg,
		analyzer: usecase.NewAnalyzer(cfg, profile, client),
		shutdown: shutdown,
	}, nil
}

// close flushes the tracer provider.
func (a *app) close(ctx context.Context) {
	if a.shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := a.shutdown(ctx); err != nil {
		slog.Warn("tracer shutdown failed", slog.Any("error", err))
	}
}
