package models

// DocumentChunk is a bounded-length slice of a document's text, the unit of
// embedding for long rulings. Chunk indexes are dense 0..N-1 per document.
type DocumentChunk struct {
	ID         int64     `json:"id"`
	DocID      int64     `json:"doc_id"`
	ChunkIndex int       `json:"chunk_index"`
	ChunkText  string    `json:"chunk_text"`
	Embedding  []float64 `json:"embedding,omitempty"`
}
