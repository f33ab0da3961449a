package decision

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	dateRe        = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	onlySymbolsRe = regexp.MustCompile(`^[\W_]+$`)
)

// CleanConfig controls variant hygiene before canon-map curation.
type CleanConfig struct {
	MaxLen        int     // reject variants longer than this
	MinUpperRatio float64 // reject variants whose letters are mostly lowercase
}

// DefaultCleanConfig mirrors the thresholds used to curate the corpus.
func DefaultCleanConfig() CleanConfig {
	return CleanConfig{MaxLen: 120, MinUpperRatio: 0.8}
}

// RejectReason classifies why a variant was filtered out.
type RejectReason string

const (
	RejectTooShort RejectReason = "too_short"
	RejectTooLong  RejectReason = "too_long"
	RejectDate     RejectReason = "date"
	RejectSymbols  RejectReason = "symbols"
	RejectNotCaps  RejectReason = "not_caps"
)

// UppercaseRatio returns the share of letters in s that are uppercase.
// Strings with no letters score 0.
func UppercaseRatio(s string) float64 {
	var letters, upper int
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

// ValidateVariant checks a variant against the hygiene rules. The empty
// reason means the variant is usable as a class candidate.
func ValidateVariant(s string, cfg CleanConfig) RejectReason {
	s = strings.TrimSpace(s)
	if len([]rune(s)) < 3 {
		return RejectTooShort
	}
	if len([]rune(s)) > cfg.MaxLen {
		return RejectTooLong
	}
	if dateRe.MatchString(s) {
		return RejectDate
	}
	if onlySymbolsRe.MatchString(s) {
		return RejectSymbols
	}
	if UppercaseRatio(s) < cfg.MinUpperRatio {
		return RejectNotCaps
	}
	return ""
}

// CleanResult is the outcome of filtering a ranked variant list.
type CleanResult struct {
	Kept     []VariantRow
	Seeds    []VariantRow // single-token variants, candidate seed classes
	Variants []VariantRow // multi-token variants
	Removed  map[RejectReason]int
}

// CleanVariants filters and re-ranks a variant table, splitting survivors
// into seed (1 token) and variant (2+ token) groups. Removal counts are
// weighted by frequency.
func CleanVariants(rows []VariantRow, cfg CleanConfig) CleanResult {
	res := CleanResult{Removed: make(map[RejectReason]int)}

	for _, row := range rows {
		count := row.Count
		if count <= 0 {
			count = 1
		}
		if reason := ValidateVariant(row.Variant, cfg); reason != "" {
			res.Removed[reason] += count
			continue
		}
		row.Variant = NormalizeDisplay(row.Variant)
		res.Kept = append(res.Kept, row)
	}

	sort.SliceStable(res.Kept, func(i, j int) bool {
		return res.Kept[i].Count > res.Kept[j].Count
	})

	for _, row := range res.Kept {
		if len(strings.Fields(row.Variant)) == 1 {
			res.Seeds = append(res.Seeds, row)
		} else {
			res.Variants = append(res.Variants, row)
		}
	}
	return res
}
