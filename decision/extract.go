package decision

import (
	"regexp"
)

// ExtractionSource says where a decision variant came from.
type ExtractionSource string

const (
	SourceExtra   ExtractionSource = "extra"   // structured "Decisão" metadata field
	SourceText    ExtractionSource = "text"    // regex match against the full text
	SourceMissing ExtractionSource = "missing" // no variant found
)

// Stats accumulates corpus-wide extraction counters. It is passed explicitly
// through batch runs and returned to the caller; there is no package state.
type Stats struct {
	TotalDocs int `json:"total_docs_seen"`
	FromExtra int `json:"decision_from_extra"`
	FromText  int `json:"decision_from_text"`
	Missing   int `json:"missing_decision"`
}

// The three extraction rules, tried in order against the full text.
// Rules 1 and 3 are line-anchored and never span lines; rule 2 may search
// the whole text but its capture is bounded to 200 characters.
var decisionRules = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*decis[aã]o\s*:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?is)\bdecis[aã]o\s*:\s*(.{3,200}?)\n`),
	regexp.MustCompile(`(?im)^\s*decis[aã]o\s*[-–—]\s*(.+?)\s*$`),
}

// ExtractFromText applies the ordered rule list and returns the first
// non-empty normalized match, or "" when no rule fires.
func ExtractFromText(textPlain string) string {
	if textPlain == "" {
		return ""
	}
	for _, rx := range decisionRules {
		m := rx.FindStringSubmatch(textPlain)
		if m == nil {
			continue
		}
		if val := Normalize(m[1]); val != "" {
			return val
		}
	}
	return ""
}

// Extract recovers the decision variant for one document. The structured
// decision_extra field is authoritative when it normalizes to a non-empty
// value; only then is the text consulted. stats may be nil.
func Extract(textPlain, decisionExtra string, stats *Stats) (string, ExtractionSource) {
	if stats != nil {
		stats.TotalDocs++
	}

	if decisionExtra != "" {
		if val := Normalize(decisionExtra); val != "" {
			if stats != nil {
				stats.FromExtra++
			}
			return val, SourceExtra
		}
	}

	if val := ExtractFromText(textPlain); val != "" {
		if stats != nil {
			stats.FromText++
		}
		return val, SourceText
	}

	if stats != nil {
		stats.Missing++
	}
	return "", SourceMissing
}
