// Package ai implements the model-facing half of the screening pipeline:
// prompt rendering, and parsing, repair and validation of model responses.
package ai

import (
	"fmt"
	"math"
	"strings"
	"text/template"

	"github.com/hireloop/cv-screener/internal/config"
)

// PromptData is the ephemeral context rendered into a prompt template for one
// pipeline invocation. Texts are expected to be normalized and truncated
// before they get here.
type PromptData struct {
	JobDescription string
	CVText         string

	EssentialSkillsPct int
	ExperiencePct      int
	EducationPct       int
	AdditionalPct      int
}

// NewPromptData builds prompt data from normalized texts and the configured
// rubric weight table.
func NewPromptData(jobDescription, cvText string, w config.Weights) PromptData {
	return PromptData{
		JobDescription:     jobDescription,
		CVText:             cvText,
		EssentialSkillsPct: pct(w.EssentialSkills),
		ExperiencePct:      pct(w.Experience),
		EducationPct:       pct(w.Education),
		AdditionalPct:      pct(w.Additional),
	}
}

func pct(w float64) int {
	return int(math.Round(w * 100))
}

// RenderPrompt executes tmpl (a text/template) with data.
func RenderPrompt(tmpl string, data PromptData) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("op=ai.RenderPrompt: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("op=ai.RenderPrompt: %w", err)
	}
	return b.String(), nil
}
