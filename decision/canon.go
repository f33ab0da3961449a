package decision

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"ai4juris-backend/models"
)

// CanonMap maps a normalized variant string to its canonical class. It is
// loaded once (from the curated CSV artifact or the built-in table) and
// treated as read-only afterwards.
type CanonMap map[string]string

// Canonicalize looks up a normalized variant. Variants absent from the map
// return UNSURE; this is a sentinel, not an error.
func (m CanonMap) Canonicalize(variant string) string {
	if canon, ok := m[Normalize(variant)]; ok {
		return canon
	}
	return models.ClassUnsure
}

// Classes returns the distinct canonical classes present in the map.
func (m CanonMap) Classes() []string {
	seen := make(map[string]bool)
	var classes []string
	for _, canon := range m {
		if !seen[canon] {
			seen[canon] = true
			classes = append(classes, canon)
		}
	}
	return classes
}

// LoadCanonMap reads the curated canon-map CSV (columns: variant,mapped_to
// and optionally count — the format written by rank-decisions). Variants are
// normalized on load so lookups stay exact-string. Rows mapping to UNSURE or
// to an unknown class are rejected: the artifact must only contain confident
// mappings to the 14 classes.
func LoadCanonMap(path string) (CanonMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open canon map: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	m := make(CanonMap)
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read canon map: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		// Skip a header row if present
		if first {
			first = false
			if rec[0] == "variant" {
				continue
			}
		}

		variant := Normalize(rec[0])
		canon := Normalize(rec[1])
		if variant == "" {
			continue
		}
		if !models.IsCanonicalClass(canon) {
			return nil, fmt.Errorf("canon map entry %q maps to unknown class %q", rec[0], rec[1])
		}
		m[variant] = canon
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("canon map %s contains no usable entries", path)
	}
	return m, nil
}

// LoadCanonMapOrDefault loads the CSV artifact at path, falling back to the
// built-in table when path is empty.
func LoadCanonMapOrDefault(path string) (CanonMap, error) {
	if path == "" {
		return DefaultCanonMap(), nil
	}
	return LoadCanonMap(path)
}
