package ai

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/hireloop/cv-screener/internal/domain"
)

// Outcome names the terminal state of one parse attempt over a raw model
// response. Everything except OutcomeAccepted is retryable; MissingFields is
// treated like any other retryable failure since it originates from model
// unreliability, not caller input.
type Outcome string

// Parse attempt outcomes.
const (
	OutcomeAccepted      Outcome = "accepted"
	OutcomeNoJSONFound   Outcome = "no_json_found"
	OutcomeParseFailed   Outcome = "parse_failed"
	OutcomeMissingFields Outcome = "missing_fields"
)

// Attempt is the result of running the parse state machine over one raw
// response. Analysis is populated only when Outcome is OutcomeAccepted;
// its ScoreBreakdown stays nil when the model omitted the field so the merge
// step can synthesize one. Missing carries field names for
// OutcomeMissingFields.
type Attempt struct {
	Outcome  Outcome
	Missing  []string
	Analysis domain.Analysis
}

// List caps applied during cleaning.
const (
	maxStrengths = 5
	maxWeakness  = 5
	maxKeySkills = 10
)

// Placeholder strings substituted when the model returns nothing usable for a
// field.
const (
	PlaceholderStrengths   = "No strengths identified"
	PlaceholderWeaknesses  = "No weaknesses identified"
	PlaceholderKeySkills   = "No key skills identified"
	DefaultRecommendation  = "Manual review recommended"
	FallbackStrength       = "Analysis unavailable"
	FallbackWeakness       = "Automated analysis failed"
	FallbackRecommendation = "Manual review recommended: automated analysis did not produce a usable result"
)

var requiredFields = []string{"match_score", "strengths", "weaknesses", "key_skills", "recommendation"}

// Parse runs the per-attempt state machine over a raw model response:
// locate the JSON object, parse it (repairing common damage once), validate
// required fields, then clean and bound the payload. Pure function; retry
// policy lives in the caller.
func Parse(raw string) Attempt {
	// Locate: the payload is whatever sits between the first '{' and the
	// last '}'. Prose and markdown fences around it are ignored.
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first == -1 || last <= first {
		return Attempt{Outcome: OutcomeNoJSONFound}
	}
	candidate := raw[first : last+1]

	// Parse, with one repair pass for the damage small local models
	// commonly inflict on JSON.
	var payload map[string]any
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		repaired := RepairJSON(candidate)
		if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
			return Attempt{Outcome: OutcomeParseFailed}
		}
	}

	// Validate required fields.
	var missing []string
	for _, f := range requiredFields {
		if _, ok := payload[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Attempt{Outcome: OutcomeMissingFields, Missing: missing}
	}

	score, ok := coerceFloat(payload["match_score"])
	if !ok {
		return Attempt{Outcome: OutcomeParseFailed}
	}

	// Clean.
	a := domain.Analysis{
		MatchScore:     clamp01(score),
		Strengths:      cleanList(payload["strengths"], maxStrengths, PlaceholderStrengths),
		Weaknesses:     cleanList(payload["weaknesses"], maxWeakness, PlaceholderWeaknesses),
		KeySkills:      cleanList(payload["key_skills"], maxKeySkills, PlaceholderKeySkills),
		Recommendation: cleanRecommendation(payload["recommendation"]),
		ScoreBreakdown: cleanBreakdown(payload["score_breakdown"]),
	}
	return Attempt{Outcome: OutcomeAccepted, Analysis: a}
}

// FallbackAnalysis is the pipeline's guaranteed exit state: returned when the
// retry budget is exhausted, never fails, always valid. A fresh value is
// built per call so returned analyses stay independent.
func FallbackAnalysis() domain.Analysis {
	return domain.Analysis{
		MatchScore: domain.NeutralScore,
		ScoreBreakdown: map[string]float64{
			domain.BreakdownEssentialSkills: domain.NeutralScore,
			domain.BreakdownExperience:      domain.NeutralScore,
			domain.BreakdownEducation:       domain.NeutralScore,
			domain.BreakdownAdditional:      domain.NeutralScore,
		},
		Strengths:      []string{FallbackStrength},
		Weaknesses:     []string{FallbackWeakness},
		KeySkills:      []string{PlaceholderKeySkills},
		Recommendation: FallbackRecommendation,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// coerceFloat accepts JSON numbers and numeric strings.
func coerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// cleanList coerces a JSON value into a bounded list of non-blank strings,
// substituting placeholder when nothing survives.
func cleanList(v any, maxItems int, placeholder string) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if len(out) == maxItems {
			break
		}
		s := coerceString(it)
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(s))
	}
	if len(out) == 0 {
		return []string{placeholder}
	}
	return out
}

func cleanRecommendation(v any) string {
	s := strings.TrimSpace(coerceString(v))
	if s == "" {
		return DefaultRecommendation
	}
	return s
}

// cleanBreakdown keeps only the four known categories, clamped. Returns nil
// when the model omitted the field or sent something unusable, so the merge
// step synthesizes a breakdown instead.
func cleanBreakdown(v any) map[string]float64 {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	known := []string{
		domain.BreakdownEssentialSkills,
		domain.BreakdownExperience,
		domain.BreakdownEducation,
		domain.BreakdownAdditional,
	}
	out := make(map[string]float64)
	for _, cat := range known {
		if f, ok := coerceFloat(m[cat]); ok {
			out[cat] = clamp01(f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// coerceString renders scalars as strings; composite values yield "".
func coerceString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// ParseSummary extracts a JobSummary from a raw model response. When no JSON
// object can be recovered, the raw text itself becomes the summary and the
// lists stay empty.
func ParseSummary(raw string) domain.JobSummary {
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first != -1 && last > first {
		var s domain.JobSummary
		candidate := raw[first : last+1]
		if err := json.Unmarshal([]byte(candidate), &s); err == nil && s.Summary != "" {
			return s
		}
		if err := json.Unmarshal([]byte(RepairJSON(candidate)), &s); err == nil && s.Summary != "" {
			return s
		}
	}
	return domain.JobSummary{Summary: strings.TrimSpace(raw)}
}
