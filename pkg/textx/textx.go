// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
)

// StripControl removes control characters (code point < 32) except newline.
func StripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r >= 32 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize prepares raw CV or job-description text for the pipeline:
// control characters are stripped, runs of whitespace collapse to single
// spaces, the result is trimmed and truncated to maxLen runes. Truncation
// drops the tail silently. Never fails; empty input yields empty output.
func Normalize(s string, maxLen int) string {
	s = StripControl(s)
	s = strings.Join(strings.Fields(s), " ")
	return Truncate(s, maxLen)
}

// Truncate caps s at maxLen runes. maxLen <= 0 means no cap.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
