package decision

import (
	"strings"

	"ai4juris-backend/models"
)

// VariantRow is one aggregated variant from a corpus scan: the normalized
// string, how often it occurred and the class the canon map assigns (UNSURE
// when unmapped).
//
// Origin records where extraction found the variant ("extra" or "text").
// It is provenance only; the partial heuristic never consults it. Reason is
// a mapping-stage annotation (a curation note explaining the assignment) and
// is empty on fresh corpus scans — only rows loaded from curated artifacts
// carry one.
type VariantRow struct {
	Variant  string `json:"variant"`
	Count    int    `json:"count"`
	MappedTo string `json:"mapped_to"`
	Origin   string `json:"origin,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// MappingStats audits classifier label quality for a batch of variants.
type MappingStats struct {
	TotalVariants       int            `json:"total_variants"`
	TotalWeighted       int            `json:"total_weighted_occurrences"`
	ByLabel             map[string]int `json:"by_label"`
	ByLabelWeighted     map[string]int `json:"by_label_weighted"`
	UnsureVariants      int            `json:"unsure_variants"`
	UnsureWeighted      int            `json:"unsure_weighted_occurrences"`
	UnsureRatioVariants float64        `json:"unsure_ratio_variants"`
	UnsureRatioWeighted float64        `json:"unsure_ratio_weighted"`
}

// ComputeMappingStats tallies rows by assigned label, counting UNSURE both
// unweighted (distinct variants) and frequency-weighted.
func ComputeMappingStats(rows []VariantRow) MappingStats {
	stats := MappingStats{
		ByLabel:         make(map[string]int),
		ByLabelWeighted: make(map[string]int),
	}

	for _, row := range rows {
		count := row.Count
		if count <= 0 {
			count = 1
		}
		label := row.MappedTo
		if label == "" {
			label = models.ClassUnsure
		}

		stats.TotalVariants++
		stats.TotalWeighted += count
		stats.ByLabel[label]++
		stats.ByLabelWeighted[label] += count

		if label == models.ClassUnsure {
			stats.UnsureVariants++
			stats.UnsureWeighted += count
		}
	}

	if stats.TotalVariants > 0 {
		stats.UnsureRatioVariants = float64(stats.UnsureVariants) / float64(stats.TotalVariants)
	}
	if stats.TotalWeighted > 0 {
		stats.UnsureRatioWeighted = float64(stats.UnsureWeighted) / float64(stats.TotalWeighted)
	}
	return stats
}

// partialMarkers flag variants describing partial/mixed rulings. PARTE alone
// is known to over-trigger on unrelated variants; kept as observed in the
// corpus until a precision/recall pass revisits the list.
var partialMarkers = []string{
	"PARCIAL",
	"EM PARTE",
	"PARTE",
	"PARCIALMENTE",
	"PARCIALMETE", // corpus misspelling, frequent enough to matter
}

// IsPartial reports whether a variant describes a partial/mixed ruling,
// using the variant text plus the curation reason when one exists. Partial
// rulings are not "can't classify" — they need distinct downstream handling
// from clean UNSURE variants.
func IsPartial(variant, reason string) bool {
	if strings.Contains(strings.ToLower(reason), "parcial") {
		return true
	}
	v := Normalize(variant)
	for _, marker := range partialMarkers {
		if strings.Contains(v, marker) {
			return true
		}
	}
	return false
}

// SplitUnsure divides UNSURE rows into the partial/mixed bucket and the
// remainder.
func SplitUnsure(rows []VariantRow) (partial, nonPartial []VariantRow) {
	for _, row := range rows {
		if IsPartial(row.Variant, row.Reason) {
			partial = append(partial, row)
		} else {
			nonPartial = append(nonPartial, row)
		}
	}
	return partial, nonPartial
}
