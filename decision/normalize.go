package decision

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	labelPrefixRe = regexp.MustCompile(`(?i)^\s*decis[aã]o\s*[:\-–—]\s*`)
)

// NormalizeDisplay cleans a raw decision mention while preserving letter
// case, for variant-ranking tables. Steps: non-breaking spaces to ASCII
// space, trim, collapse whitespace runs, strip leading "Decisão:" /
// "Decisão -" style label prefixes until none remain. Empty in, empty out.
// Idempotent.
func NormalizeDisplay(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	// Stripping one prefix can expose another ("Decisão: Decisão - ...");
	// keep stripping until a fixpoint
	for {
		stripped := labelPrefixRe.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}
	return strings.TrimSpace(s)
}

// Normalize is NormalizeDisplay plus uppercasing, producing the comparable
// form used for canonical-map lookups.
func Normalize(s string) string {
	return strings.ToUpper(NormalizeDisplay(s))
}
