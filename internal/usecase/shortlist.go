package usecase

import (
	"sort"

	"github.com/hireloop/cv-screener/internal/domain"
)

// Shortlist filters batch results down to candidates whose match score meets
// the threshold, sorted by score descending (candidate ID breaks ties for a
// stable order). Items that failed with an input error are excluded;
// degraded items participate with their neutral fallback score.
func Shortlist(results []domain.ItemResult, threshold float64) []domain.ItemResult {
	out := make([]domain.ItemResult, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if r.Analysis.MatchScore >= threshold {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Analysis.MatchScore != out[j].Analysis.MatchScore {
			return out[i].Analysis.MatchScore > out[j].Analysis.MatchScore
		}
		return out[i].CandidateID < out[j].CandidateID
	})
	return out
}
