// Package usecase contains the screening pipeline's application logic.
package usecase

import (
	"fmt"
	"strings"
	"time"

	"log/slog"

	backoff "github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hireloop/cv-screener/internal/adapter/ai"
	"github.com/hireloop/cv-screener/internal/adapter/observability"
	"github.com/hireloop/cv-screener/internal/config"
	"github.com/hireloop/cv-screener/internal/domain"
	"github.com/hireloop/cv-screener/internal/skills"
	"github.com/hireloop/cv-screener/pkg/textx"
)

// Analyzer runs the CV-to-job matching pipeline: normalize, extract skills,
// prompt the model, parse/validate the response, and merge scores. All
// configuration is injected at construction; the analyzer holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	cfg     config.Config
	profile config.Profile
	vocab   skills.Vocabulary
	client  domain.ModelClient
	tracer  trace.Tracer
}

// NewAnalyzer wires an analyzer from configuration, a screening profile and
// a model client.
func NewAnalyzer(cfg config.Config, profile config.Profile, client domain.ModelClient) *Analyzer {
	return &Analyzer{
		cfg:     cfg,
		profile: profile,
		vocab: skills.Vocabulary{
			Technical: profile.TechnicalSkills,
			Soft:      profile.SoftSkills,
		},
		client: client,
		tracer: otel.Tracer("usecase"),
	}
}

// AnalyzeCV evaluates one CV against one job description and returns a
// complete Analysis. Empty inputs are the only hard failure
// (domain.ErrInvalidInput); model unavailability and malformed responses are
// retried up to the configured attempt budget and then degrade to the
// fallback Analysis, never an error.
func (a *Analyzer) AnalyzeCV(ctx domain.Context, cvText, jobDescription string) (domain.Analysis, error) {
	res, _, err := a.analyze(ctx, cvText, jobDescription)
	return res, err
}

// analyze is AnalyzeCV plus a degraded flag for batch reporting.
func (a *Analyzer) analyze(ctx domain.Context, cvText, jobDescription string) (domain.Analysis, bool, error) {
	if strings.TrimSpace(cvText) == "" {
		observability.AnalysesTotal.WithLabelValues("invalid_input").Inc()
		return domain.Analysis{}, false, fmt.Errorf("%w: cv text is empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(jobDescription) == "" {
		observability.AnalysesTotal.WithLabelValues("invalid_input").Inc()
		return domain.Analysis{}, false, fmt.Errorf("%w: job description is empty", domain.ErrInvalidInput)
	}

	ctx, span := a.tracer.Start(ctx, "screening.analyze")
	defer span.End()

	start := time.Now()
	defer func() { observability.AnalysisDuration.Observe(time.Since(start).Seconds()) }()

	cv := textx.Normalize(cvText, a.cfg.MaxTextLength)
	jd := textx.Normalize(jobDescription, a.cfg.MaxTextLength)

	cvSkills := a.vocab.Extract(cv)
	jobSkills := a.vocab.Extract(jd)
	heuristic := skills.Overlap(cvSkills, jobSkills)
	span.SetAttributes(
		attribute.Int("cv_chars", len(cv)),
		attribute.Int("jd_chars", len(jd)),
		attribute.Float64("heuristic_score", heuristic),
	)

	prompt, err := ai.RenderPrompt(a.profile.PromptTemplate, ai.NewPromptData(jd, cv, a.profile.ScoreWeights))
	if err != nil {
		// A template that does not render is a configuration bug, not
		// model unreliability; surface it.
		observability.AnalysesTotal.WithLabelValues("invalid_input").Inc()
		return domain.Analysis{}, false, err
	}

	bo := a.newBackoff()
	for attempt := 1; attempt <= a.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		raw, err := a.client.Chat(ctx, config.SystemPrompt, prompt)
		if err != nil {
			slog.Warn("model call failed",
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", a.cfg.MaxAttempts),
				slog.Int("cv_chars", len(cv)),
				slog.Int("jd_chars", len(jd)),
				slog.Any("error", err))
			a.wait(ctx, bo)
			continue
		}

		att := ai.Parse(raw)
		observability.ParseAttemptsTotal.WithLabelValues(string(att.Outcome)).Inc()
		if att.Outcome == ai.OutcomeAccepted {
			merged := mergeAnalysis(heuristic, cvSkills, att.Analysis)
			observability.AnalysesTotal.WithLabelValues("ok").Inc()
			observability.MatchScoreHistogram.Observe(merged.MatchScore)
			span.SetAttributes(attribute.Float64("match_score", merged.MatchScore))
			return merged, false, nil
		}

		slog.Warn("model response rejected",
			slog.String("outcome", string(att.Outcome)),
			slog.Any("missing_fields", att.Missing),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", a.cfg.MaxAttempts),
			slog.String("response_prefix", prefix(raw, 256)))
		a.wait(ctx, bo)
	}

	slog.Error("analysis attempts exhausted; returning fallback",
		slog.Int("max_attempts", a.cfg.MaxAttempts),
		slog.Int("cv_chars", len(cv)),
		slog.Int("jd_chars", len(jd)))
	observability.AnalysesTotal.WithLabelValues("fallback").Inc()
	fb := ai.FallbackAnalysis()
	observability.MatchScoreHistogram.Observe(fb.MatchScore)
	return fb, true, nil
}

func (a *Analyzer) newBackoff() *backoff.ExponentialBackOff {
	initial, maxDelay, multiplier := a.cfg.GetRetryBackoff()
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initial
	bo.MaxInterval = maxDelay
	bo.Multiplier = multiplier
	bo.MaxElapsedTime = 0 // the attempt budget bounds the loop, not time
	return bo
}

// wait sleeps for the next backoff interval or until ctx is done.
func (a *Analyzer) wait(ctx domain.Context, bo backoff.BackOff) {
	d := bo.NextBackOff()
	if d == backoff.Stop {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
