package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/cv-screener/internal/config"
)

func TestRenderPromptDefaultTemplate(t *testing.T) {
	t.Parallel()

	data := NewPromptData("Need a Go engineer", "I write Go services", config.DefaultProfile().ScoreWeights)
	out, err := RenderPrompt(config.DefaultPromptTemplate, data)
	require.NoError(t, err)

	assert.Contains(t, out, "Need a Go engineer")
	assert.Contains(t, out, "I write Go services")
	assert.Contains(t, out, "Essential Skills Match (40% of total score)")
	assert.Contains(t, out, "Experience Relevance (30% of total score)")
	assert.Contains(t, out, "Education Fit (15% of total score)")
	assert.Contains(t, out, "Additional Qualifications (15% of total score)")
	assert.Contains(t, out, `"match_score"`)
}

func TestRenderPromptCustomWeights(t *testing.T) {
	t.Parallel()

	w := config.Weights{EssentialSkills: 0.5, Experience: 0.25, Education: 0.125, Additional: 0.125}
	data := NewPromptData("jd", "cv", w)
	assert.Equal(t, 50, data.EssentialSkillsPct)
	assert.Equal(t, 25, data.ExperiencePct)
	assert.Equal(t, 13, data.EducationPct, "rounded to nearest percent")
}

func TestRenderPromptBadTemplate(t *testing.T) {
	t.Parallel()

	_, err := RenderPrompt("{{.Unclosed", PromptData{})
	assert.Error(t, err)
}

func TestRenderSummarizeTemplate(t *testing.T) {
	t.Parallel()

	out, err := RenderPrompt(config.SummarizePromptTemplate, PromptData{JobDescription: "Platform team lead"})
	require.NoError(t, err)
	assert.Contains(t, out, "Platform team lead")
	assert.True(t, strings.Contains(out, `"key_requirements"`))
}

func TestRepairJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trailing_comma_object",
			input:    `{"a": 1,}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "trailing_comma_array",
			input:    `{"a": [1, 2,]}`,
			expected: `{"a": [1, 2]}`,
		},
		{
			name:     "single_quotes",
			input:    `{'a': 'b'}`,
			expected: `{"a": "b"}`,
		},
		{
			name:     "backticks",
			input:    "{`a`: `b`}",
			expected: `{"a": "b"}`,
		},
		{
			name:     "unquoted_keys",
			input:    `{a: 1, b_2: 2}`,
			expected: `{"a": 1, "b_2": 2}`,
		},
		{
			name:     "already_valid_untouched",
			input:    `{"a": "b"}`,
			expected: `{"a": "b"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, RepairJSON(tt.input))
		})
	}
}
