package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/cv-screener/internal/adapter/ai"
	"github.com/hireloop/cv-screener/internal/domain"
)

func TestMergeAnalysis_MeanRoundedToTwoDecimals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		heuristic float64
		model     float64
		want      float64
	}{
		{name: "midpoints", heuristic: 0.5, model: 0.5, want: 0.5},
		{name: "rounding up", heuristic: 0.333, model: 0.5, want: 0.42},
		{name: "rounding down", heuristic: 0.1, model: 0.122, want: 0.11},
		{name: "both zero", heuristic: 0, model: 0, want: 0},
		{name: "both one", heuristic: 1, model: 1, want: 1},
		{name: "model out of range clamped first", heuristic: 0.4, model: 7.5, want: 0.7},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := mergeAnalysis(tc.heuristic, []string{"Python"}, domain.Analysis{MatchScore: tc.model})
			assert.InDelta(t, tc.want, got.MatchScore, 1e-9)
		})
	}
}

func TestMergeAnalysis_KeySkillsOverwritten(t *testing.T) {
	t.Parallel()

	m := domain.Analysis{
		MatchScore: 0.9,
		KeySkills:  []string{"Quantum Computing", "Blockchain"},
	}
	got := mergeAnalysis(0.5, []string{"Python", "SQL"}, m)
	assert.Equal(t, []string{"Python", "SQL"}, got.KeySkills,
		"extractor findings replace model-invented skills")

	got = mergeAnalysis(0.5, nil, m)
	assert.Equal(t, []string{ai.PlaceholderKeySkills}, got.KeySkills)
}

func TestMergeAnalysis_BreakdownSynthesized(t *testing.T) {
	t.Parallel()

	got := mergeAnalysis(0.6, []string{"Python"}, domain.Analysis{MatchScore: 0.8})
	require.Len(t, got.ScoreBreakdown, 4)
	assert.InDelta(t, 0.6, got.ScoreBreakdown[domain.BreakdownEssentialSkills], 1e-9)
	assert.InDelta(t, 0.8, got.ScoreBreakdown[domain.BreakdownExperience], 1e-9)
	assert.InDelta(t, domain.NeutralScore, got.ScoreBreakdown[domain.BreakdownEducation], 1e-9)
	assert.InDelta(t, domain.NeutralScore, got.ScoreBreakdown[domain.BreakdownAdditional], 1e-9)
}

func TestMergeAnalysis_BreakdownNormalized(t *testing.T) {
	t.Parallel()

	m := domain.Analysis{
		MatchScore: 0.7,
		ScoreBreakdown: map[string]float64{
			domain.BreakdownEssentialSkills: 1.5,  // clamped
			domain.BreakdownExperience:      -0.2, // clamped
			domain.BreakdownEducation:       0.4,
			// additional omitted: defaults to neutral
		},
	}
	got := mergeAnalysis(0.5, []string{"Python"}, m)
	require.Len(t, got.ScoreBreakdown, 4)
	assert.InDelta(t, 1.0, got.ScoreBreakdown[domain.BreakdownEssentialSkills], 1e-9)
	assert.InDelta(t, 0.0, got.ScoreBreakdown[domain.BreakdownExperience], 1e-9)
	assert.InDelta(t, 0.4, got.ScoreBreakdown[domain.BreakdownEducation], 1e-9)
	assert.InDelta(t, domain.NeutralScore, got.ScoreBreakdown[domain.BreakdownAdditional], 1e-9)
}

func TestMergeAnalysis_PassthroughFields(t *testing.T) {
	t.Parallel()

	m := domain.Analysis{
		MatchScore:     0.8,
		Strengths:      []string{"strong fundamentals"},
		Weaknesses:     []string{"no production experience"},
		Recommendation: "Phone screen",
	}
	got := mergeAnalysis(0.5, []string{"Python"}, m)
	assert.Equal(t, m.Strengths, got.Strengths)
	assert.Equal(t, m.Weaknesses, got.Weaknesses)
	assert.Equal(t, m.Recommendation, got.Recommendation)
}
