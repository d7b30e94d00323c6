// Package observability wires logging, metrics and tracing for the screener.
package observability

import (
	"log/slog"
	"os"

	"github.com/hireloop/cv-screener/internal/config"
)

// SetupLogger builds the process-wide JSON logger.
func SetupLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{}
	// In dev, show debug level; in prod, default to info
	if cfg.IsDev() {
		opts.Level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stderr, opts)
	logger := slog.New(h).With(
		slog.String("service", cfg.OTELServiceName),
		slog.String("env", cfg.AppEnv),
	)
	return logger
}
