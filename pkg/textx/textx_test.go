package textx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripControl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain_text", input: "hello world", expected: "hello world"},
		{name: "null_bytes", input: "hel\x00lo", expected: "hello"},
		{name: "bell_and_escape", input: "a\x07b\x1bc", expected: "abc"},
		{name: "newline_kept", input: "a\nb", expected: "a\nb"},
		{name: "tab_and_cr_removed", input: "a\tb\rc", expected: "abc"},
		{name: "empty", input: "", expected: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, StripControl(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "collapses_whitespace", input: "a   b\t\tc", maxLen: 0, expected: "a b c"},
		{name: "newlines_collapse_to_spaces", input: "line1\n\nline2", maxLen: 0, expected: "line1 line2"},
		{name: "trims_edges", input: "  padded  ", maxLen: 0, expected: "padded"},
		{name: "truncates_tail", input: "abcdef", maxLen: 4, expected: "abcd"},
		{name: "empty_in_empty_out", input: "", maxLen: 100, expected: ""},
		{name: "control_chars_dropped", input: "a\x00b \x07 c", maxLen: 0, expected: "ab c"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Normalize(tt.input, tt.maxLen))
		})
	}
}

func TestNormalizeTruncationProperty(t *testing.T) {
	t.Parallel()

	// Any input longer than the cap comes back at or under the cap.
	long := strings.Repeat("word ", 2000)
	for _, maxLen := range []int{1, 10, 100, 4000} {
		got := Normalize(long, maxLen)
		assert.LessOrEqual(t, len([]rune(got)), maxLen, "maxLen=%d", maxLen)
	}
}

func TestTruncateMultibyte(t *testing.T) {
	t.Parallel()

	// Truncation counts runes, not bytes.
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "héllo", Truncate("héllo", 5))
}
