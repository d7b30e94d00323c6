package ai

import (
	"regexp"
	"strings"
)

var (
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
	unquotedKeyRe   = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// RepairJSON fixes the damage small local models commonly inflict on JSON
// payloads: trailing commas, single-quoted or backticked strings, and
// unquoted object keys. It is a best-effort pass applied only after a strict
// parse has already failed; the result still has to survive json.Unmarshal.
func RepairJSON(s string) string {
	s = strings.ReplaceAll(s, "`", `"`)
	s = strings.ReplaceAll(s, "'", `"`)
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = unquotedKeyRe.ReplaceAllString(s, `$1"$2":`)
	return s
}
