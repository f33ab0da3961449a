package models

import (
	"time"
)

// Document represents a scraped court ruling stored in dgsi_documents
type Document struct {
	ID          int64    `json:"id"`
	Source      string   `json:"source"` // origin database, e.g. "dgsi_stj"
	BaseName    string   `json:"base_name"`
	URL         string   `json:"url"`
	Processo    *string  `json:"processo,omitempty"`
	SessaoDate  *string  `json:"sessao_date,omitempty"`
	Relator     *string  `json:"relator,omitempty"`
	Descritores []string `json:"descritores"`
	TextPlain   string   `json:"text_plain"`

	// DecisionExtra is the author-provided "Decisão" metadata field.
	// When present it is authoritative over anything extracted from text.
	DecisionExtra *string `json:"decision_extra,omitempty"`

	// Decision holds the canonical class label once the document has been
	// classified. Empty means unclassified; UNSURE is never persisted here.
	Decision *string `json:"decision,omitempty"`

	// Embedding is the whole-document vector, nil until indexed.
	Embedding []float64 `json:"embedding,omitempty"`

	StoragePath *string   `json:"storage_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
