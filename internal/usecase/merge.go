package usecase

import (
	"math"

	"github.com/hireloop/cv-screener/internal/adapter/ai"
	"github.com/hireloop/cv-screener/internal/domain"
	"github.com/hireloop/cv-screener/internal/skills"
)

// mergeAnalysis combines the heuristic skill-overlap score with the model's
// assessment into the final Analysis.
//
// The merged match score is the arithmetic mean of the two, rounded to two
// decimals. KeySkills is overwritten with the extractor's matches: the model
// is prone to inventing skills not present in the text, while the extractor
// only reports vocabulary words it actually found. A missing breakdown is
// synthesized; missing categories default to the neutral midpoint.
func mergeAnalysis(heuristicScore float64, cvSkills []string, m domain.Analysis) domain.Analysis {
	modelScore := skills.Clamp01(m.MatchScore)
	score := round2(skills.Clamp01((heuristicScore + modelScore) / 2))

	keySkills := cvSkills
	if len(keySkills) == 0 {
		keySkills = []string{ai.PlaceholderKeySkills}
	}

	return domain.Analysis{
		MatchScore:     score,
		ScoreBreakdown: buildBreakdown(m.ScoreBreakdown, heuristicScore, modelScore),
		Strengths:      m.Strengths,
		Weaknesses:     m.Weaknesses,
		KeySkills:      keySkills,
		Recommendation: m.Recommendation,
	}
}

// buildBreakdown guarantees all four categories with values in [0,1]. When
// the model sent nothing, essential_skills carries the heuristic score and
// experience the model score, per the synthesis rule.
func buildBreakdown(modelBreakdown map[string]float64, heuristicScore, modelScore float64) map[string]float64 {
	if modelBreakdown == nil {
		return map[string]float64{
			domain.BreakdownEssentialSkills: round2(skills.Clamp01(heuristicScore)),
			domain.BreakdownExperience:      round2(skills.Clamp01(modelScore)),
			domain.BreakdownEducation:       domain.NeutralScore,
			domain.BreakdownAdditional:      domain.NeutralScore,
		}
	}
	out := make(map[string]float64, 4)
	for _, cat := range []string{
		domain.BreakdownEssentialSkills,
		domain.BreakdownExperience,
		domain.BreakdownEducation,
		domain.BreakdownAdditional,
	} {
		v, ok := modelBreakdown[cat]
		if !ok {
			v = domain.NeutralScore
		}
		out[cat] = skills.Clamp01(v)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
