package models

// RetrievalResult is a ranked whole-document match. Similarity is cosine
// similarity (1 - cosine_distance), in [-1, 1], 1 meaning identical direction.
type RetrievalResult struct {
	ID          int64    `json:"id"`
	URL         string   `json:"url"`
	Processo    *string  `json:"processo,omitempty"`
	TextPlain   string   `json:"text_plain"`
	Source      string   `json:"source"`
	SessaoDate  *string  `json:"sessao_date,omitempty"`
	Descritores []string `json:"descritores"`
	Decision    *string  `json:"decision,omitempty"`
	Similarity  float64  `json:"similarity"`
}

// ChunkRetrievalResult is a ranked chunk-level match joined with the owning
// document's metadata.
type ChunkRetrievalResult struct {
	ChunkID    int64   `json:"chunk_id"`
	DocID      int64   `json:"doc_id"`
	ChunkIndex int     `json:"chunk_index"`
	ChunkText  string  `json:"chunk_text"`
	Similarity float64 `json:"similarity"`
	URL        string  `json:"url"`
	Processo   *string `json:"processo,omitempty"`
	Source     string  `json:"source"`
	SessaoDate *string `json:"sessao_date,omitempty"`
}
