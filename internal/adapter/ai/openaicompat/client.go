// Package openaicompat implements domain.ModelClient against any
// OpenAI-compatible chat-completions endpoint, including a local Ollama
// server's /v1 API.
package openaicompat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hireloop/cv-screener/internal/adapter/ai/tokencount"
	"github.com/hireloop/cv-screener/internal/adapter/observability"
	"github.com/hireloop/cv-screener/internal/config"
	"github.com/hireloop/cv-screener/internal/domain"
)

// Client issues single chat-completions requests. It performs no retries;
// the analysis retry loop owns that policy.
type Client struct {
	cfg     config.Config
	hc      *http.Client
	counter *tokencount.Counter
}

// New constructs a client with the configured request timeout and an
// OTel-instrumented transport.
func New(cfg config.Config) *Client {
	return &Client{
		cfg: cfg,
		hc: &http.Client{
			Timeout:   cfg.ModelTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		counter: tokencount.NewCounter(),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends one request to the chat endpoint and returns the raw text
// content of the model's reply. Connection errors, timeouts, non-2xx
// statuses and malformed response envelopes all surface as
// domain.ErrModelUnavailable.
func (c *Client) Chat(ctx domain.Context, systemPrompt, userPrompt string) (string, error) {
	reqID := uuid.NewString()
	endpoint := c.cfg.ModelBaseURL + "/chat/completions"

	slog.Debug("issuing chat completion",
		slog.String("request_id", reqID),
		slog.String("model", c.cfg.ModelName),
		slog.String("endpoint", endpoint),
		slog.Int("prompt_chars", len(systemPrompt)+len(userPrompt)),
		slog.Int("prompt_tokens_est", c.counter.Count(c.cfg.ModelName, systemPrompt+userPrompt)))

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.ModelName,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", domain.ErrModelUnavailable, err)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrModelUnavailable, err)
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-Request-Id", reqID)
	if c.cfg.ModelAPIKey != "" {
		r.Header.Set("Authorization", "Bearer "+c.cfg.ModelAPIKey)
	}

	start := time.Now()
	resp, err := c.hc.Do(r)
	observability.ModelRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.ModelRequestsTotal.WithLabelValues("error").Inc()
		slog.Warn("model request failed",
			slog.String("request_id", reqID),
			slog.String("endpoint", endpoint),
			slog.Any("error", err))
		return "", fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.ModelRequestsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: read response: %v", domain.ErrModelUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		observability.ModelRequestsTotal.WithLabelValues("error").Inc()
		slog.Warn("model endpoint non-2xx",
			slog.String("request_id", reqID),
			slog.Int("status", resp.StatusCode),
			slog.String("model", c.cfg.ModelName),
			slog.String("body", snippet(respBody, 512)))
		return "", fmt.Errorf("%w: chat status %d", domain.ErrModelUnavailable, resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		observability.ModelRequestsTotal.WithLabelValues("error").Inc()
		slog.Warn("model response envelope decode failed",
			slog.String("request_id", reqID),
			slog.String("body", snippet(respBody, 512)),
			slog.Any("error", err))
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrModelUnavailable, err)
	}
	if len(out.Choices) == 0 {
		observability.ModelRequestsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: empty choices", domain.ErrModelUnavailable)
	}

	observability.ModelRequestsTotal.WithLabelValues("ok").Inc()
	content := out.Choices[0].Message.Content
	slog.Debug("chat completion received",
		slog.String("request_id", reqID),
		slog.String("model", out.Model),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("content_chars", len(content)))
	return content, nil
}

func snippet(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
