package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocabulary() Vocabulary {
	return Vocabulary{
		Technical: []string{"Python", "Java", "SQL", "Docker", "Kubernetes"},
		Soft:      []string{"Leadership", "Communication"},
	}
}

func TestVocabularyExtract(t *testing.T) {
	t.Parallel()

	v := testVocabulary()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "case_insensitive_match",
			text:     "Experienced python developer with docker and strong leadership.",
			expected: []string{"Python", "Docker", "Leadership"},
		},
		{
			name:     "vocabulary_order_preserved",
			text:     "communication first, then SQL, then Java",
			expected: []string{"Java", "SQL", "Communication"},
		},
		{
			name:     "no_matches",
			text:     "professional gardener",
			expected: nil,
		},
		{
			name:     "empty_text",
			text:     "",
			expected: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, v.Extract(tt.text))
		})
	}
}

func TestVocabularyExtractSubstringContainment(t *testing.T) {
	t.Parallel()

	// Matching is substring containment by design; "Java" matches inside
	// "JavaScript". Documented limitation, not a bug.
	v := Vocabulary{Technical: []string{"Java"}}
	assert.Equal(t, []string{"Java"}, v.Extract("Senior JavaScript engineer"))
}

func TestOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cvSkills  []string
		jobSkills []string
		expected  float64
	}{
		{
			name:      "empty_job_skills_neutral",
			cvSkills:  []string{"Python"},
			jobSkills: nil,
			expected:  0.5,
		},
		{
			name:      "half_matched",
			cvSkills:  []string{"Python", "SQL"},
			jobSkills: []string{"Python", "Java"},
			expected:  0.5,
		},
		{
			name:      "full_match",
			cvSkills:  []string{"Python", "Java", "SQL"},
			jobSkills: []string{"Python", "Java"},
			expected:  1.0,
		},
		{
			name:      "no_match",
			cvSkills:  []string{"Ruby"},
			jobSkills: []string{"Python", "Java"},
			expected:  0.0,
		},
		{
			name:      "case_insensitive_intersection",
			cvSkills:  []string{"python", "JAVA"},
			jobSkills: []string{"Python", "Java"},
			expected:  1.0,
		},
		{
			name:      "empty_cv_skills",
			cvSkills:  nil,
			jobSkills: []string{"Python"},
			expected:  0.0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Overlap(tt.cvSkills, tt.jobSkills)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestOverlapBounded(t *testing.T) {
	t.Parallel()

	// Duplicate job skills must not push the ratio past 1.
	got := Overlap([]string{"Python"}, []string{"Python", "python", "PYTHON"})
	require.LessOrEqual(t, got, 1.0)
	require.GreaterOrEqual(t, got, 0.0)
}

func TestClamp01(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.42, Clamp01(0.42))
}
