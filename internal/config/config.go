// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`

	// Model endpoint. The default targets a local Ollama server's
	// OpenAI-compatible API; any /chat/completions endpoint works.
	ModelName    string        `env:"MODEL_NAME" envDefault:"llama3:latest" validate:"required"`
	ModelBaseURL string        `env:"MODEL_BASE_URL" envDefault:"http://127.0.0.1:11434/v1" validate:"required,url"`
	ModelAPIKey  string        `env:"MODEL_API_KEY"`
	ModelTimeout time.Duration `env:"MODEL_TIMEOUT" envDefault:"120s"`
	ModelStub    bool          `env:"MODEL_STUB" envDefault:"false"`

	// Pipeline limits.
	MaxTextLength  int `env:"MAX_TEXT_LENGTH" envDefault:"4000" validate:"gt=0"`
	BatchChunkSize int `env:"BATCH_CHUNK_SIZE" envDefault:"5" validate:"gte=1"`
	// MaxAttempts is the total attempt budget for one analysis, covering
	// the model call plus response parsing.
	MaxAttempts int `env:"ANALYZE_MAX_ATTEMPTS" envDefault:"3" validate:"gte=1"`

	ShortlistThreshold float64 `env:"SHORTLIST_THRESHOLD" envDefault:"0.8" validate:"gte=0,lte=1"`

	// ProfilePath points at an optional YAML screening profile overriding
	// the built-in skill vocabularies, weights and prompt template.
	ProfilePath string `env:"SCREENING_PROFILE"`

	// Backoff between analysis attempts.
	RetryInitialDelay time.Duration `env:"RETRY_INITIAL_DELAY" envDefault:"2s"`
	RetryMaxDelay     time.Duration `env:"RETRY_MAX_DELAY" envDefault:"30s"`
	RetryMultiplier   float64       `env:"RETRY_MULTIPLIER" envDefault:"2.0" validate:"gte=1"`

	// Observability.
	MetricsAddr     string `env:"METRICS_ADDR"`
	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"cv-screener"`
}

// Load parses environment variables into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }

// GetRetryBackoff returns the inter-attempt backoff parameters for the
// current environment. Test environments use short delays so retry-budget
// tests run fast.
func (c Config) GetRetryBackoff() (initial, maxDelay time.Duration, multiplier float64) {
	if c.IsTest() {
		return 10 * time.Millisecond, 100 * time.Millisecond, 2.0
	}
	return c.RetryInitialDelay, c.RetryMaxDelay, c.RetryMultiplier
}
