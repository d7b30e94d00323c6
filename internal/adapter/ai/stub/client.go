// Package stub is a fast, deterministic model client for local runs and
// tests. Enable it with MODEL_STUB=true; no model server is contacted.
package stub

import (
	"encoding/json"
	"strings"

	"github.com/hireloop/cv-screener/internal/domain"
)

// Client returns canned, schema-conforming JSON.
type Client struct{}

// New constructs a stub client.
func New() *Client { return &Client{} }

// Chat returns a deterministic payload matching the requested schema. The
// summarize prompt gets a summary payload; everything else gets an analysis.
func (c *Client) Chat(_ domain.Context, _ string, userPrompt string) (string, error) {
	if strings.Contains(userPrompt, `"key_requirements"`) {
		b, _ := json.Marshal(map[string]any{
			"summary":              "Backend engineering role focused on Go services.",
			"key_requirements":     []string{"Go", "SQL", "Docker"},
			"key_responsibilities": []string{"Build APIs", "Operate services"},
		})
		return string(b), nil
	}
	b, _ := json.Marshal(map[string]any{
		"match_score": 0.72,
		"score_breakdown": map[string]float64{
			"essential_skills": 0.8,
			"experience":       0.7,
			"education":        0.6,
			"additional":       0.7,
		},
		"strengths":      []string{"Relevant backend experience", "Strong delivery record"},
		"weaknesses":     []string{"Limited cloud exposure"},
		"key_skills":     []string{"Go", "SQL"},
		"recommendation": "Proceed to interview; verify cloud experience.",
	})
	return string(b), nil
}
