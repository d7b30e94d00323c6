// Package domain defines the core entities and ports of the screening pipeline.
package domain

import (
	"context"
	"errors"
)

// Context aliases context.Context so dependents avoid importing both
// packages.
type Context = context.Context

// Error taxonomy (sentinels)
var (
	// ErrInvalidInput marks caller errors (empty CV text or job description).
	// It is the only condition surfaced as a hard failure; everything
	// model-related degrades to a fallback Analysis instead.
	ErrInvalidInput = errors.New("invalid input")
	// ErrModelUnavailable marks network/endpoint failures against the model.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrMalformedResponse marks model output from which no usable JSON
	// payload could be recovered.
	ErrMalformedResponse = errors.New("malformed model response")
)

// Score breakdown categories. All four are always present on a returned
// Analysis; categories the model omits default to the neutral midpoint 0.5.
const (
	BreakdownEssentialSkills = "essential_skills"
	BreakdownExperience      = "experience"
	BreakdownEducation       = "education"
	BreakdownAdditional      = "additional"
)

// NeutralScore is the midpoint used when no signal is available: empty job
// skill sets, omitted breakdown categories, and the fallback Analysis.
const NeutralScore = 0.5

// Analysis is the structured output of one CV-to-job evaluation.
// Invariants: MatchScore in [0,1]; ScoreBreakdown carries exactly the four
// categories above with values in [0,1]; Strengths, Weaknesses, KeySkills and
// Recommendation are never empty (placeholders substituted when the model
// returns nothing). Immutable once returned.
type Analysis struct {
	MatchScore     float64            `json:"match_score"`
	ScoreBreakdown map[string]float64 `json:"score_breakdown"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	KeySkills      []string           `json:"key_skills"`
	Recommendation string             `json:"recommendation"`
}

// JobSummary is the structured output of the job-description summarizer.
type JobSummary struct {
	Summary             string   `json:"summary"`
	KeyRequirements     []string `json:"key_requirements"`
	KeyResponsibilities []string `json:"key_responsibilities"`
}

// BatchItem is one CV queued for batch analysis.
type BatchItem struct {
	CandidateID string
	CVText      string
}

// ItemResult pairs a batch item's outcome back to its candidate.
// Degraded is set when the analysis exhausted its retry budget and the
// fallback Analysis was substituted; Err is set only for invalid input.
type ItemResult struct {
	CandidateID string   `json:"candidate_id"`
	Analysis    Analysis `json:"analysis"`
	Degraded    bool     `json:"degraded,omitempty"`
	Err         error    `json:"-"`
}

// ModelClient (port)
//
// Chat issues a single request to the configured chat endpoint and returns
// the raw text content of the model's reply. It performs no retries; retry
// policy belongs to the caller.
type ModelClient interface {
	Chat(ctx Context, systemPrompt, userPrompt string) (string, error)
}
