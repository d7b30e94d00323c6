// Package skills implements keyword-based skill extraction and the heuristic
// overlap score between a CV and a job description.
package skills

import (
	"strings"

	"github.com/hireloop/cv-screener/internal/domain"
)

// Vocabulary is the fixed, ordered set of skill keywords the extractor
// recognizes. Keywords keep their declared casing in extraction results.
type Vocabulary struct {
	Technical []string
	Soft      []string
}

// All returns the technical keywords followed by the soft keywords.
func (v Vocabulary) All() []string {
	out := make([]string, 0, len(v.Technical)+len(v.Soft))
	out = append(out, v.Technical...)
	out = append(out, v.Soft...)
	return out
}

// Extract scans text for vocabulary keywords, case-insensitively, and returns
// the matches in vocabulary order with their declared casing.
//
// Matching is substring containment, not word-boundary: short keywords can
// match inside unrelated words (e.g. "AI" inside "maintain"). This mirrors
// how screening vocabularies are commonly matched and is a known
// false-positive source; callers relying on exact matches should use a
// stricter vocabulary rather than expecting boundary checks here.
func (v Vocabulary) Extract(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range v.All() {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}

// Overlap computes the heuristic match score: the fraction of job skills also
// present in the CV skills, compared case-insensitively. An empty job skill
// set carries no signal and yields the neutral 0.5.
func Overlap(cvSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return domain.NeutralScore
	}
	cvSet := make(map[string]struct{}, len(cvSkills))
	for _, s := range cvSkills {
		cvSet[strings.ToLower(s)] = struct{}{}
	}
	jobSet := make(map[string]struct{}, len(jobSkills))
	for _, s := range jobSkills {
		jobSet[strings.ToLower(s)] = struct{}{}
	}
	matched := 0
	for s := range jobSet {
		if _, ok := cvSet[s]; ok {
			matched++
		}
	}
	return Clamp01(float64(matched) / float64(len(jobSet)))
}

// Clamp01 bounds v into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
