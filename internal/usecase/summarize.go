package usecase

import (
	"fmt"
	"strings"

	"log/slog"

	"github.com/hireloop/cv-screener/internal/adapter/ai"
	"github.com/hireloop/cv-screener/internal/config"
	"github.com/hireloop/cv-screener/internal/domain"
	"github.com/hireloop/cv-screener/pkg/textx"
)

// SummarizeJob asks the model for a structured summary of a job description.
// Unlike analysis, a summary is advisory: one model call, no retries. When
// the response JSON cannot be parsed, the raw reply text becomes the summary.
// A failed model call is surfaced as domain.ErrModelUnavailable.
func (a *Analyzer) SummarizeJob(ctx domain.Context, jobDescription string) (domain.JobSummary, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return domain.JobSummary{}, fmt.Errorf("%w: job description is empty", domain.ErrInvalidInput)
	}

	ctx, span := a.tracer.Start(ctx, "screening.summarize")
	defer span.End()

	jd := textx.Normalize(jobDescription, a.cfg.MaxTextLength)
	prompt, err := ai.RenderPrompt(config.SummarizePromptTemplate, ai.PromptData{JobDescription: jd})
	if err != nil {
		return domain.JobSummary{}, err
	}

	raw, err := a.client.Chat(ctx, config.SystemPrompt, prompt)
	if err != nil {
		slog.Warn("job summarization failed",
			slog.Int("jd_chars", len(jd)),
			slog.Any("error", err))
		return domain.JobSummary{}, err
	}
	return ai.ParseSummary(raw), nil
}
