package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"ai4juris-backend/chunker"
	"ai4juris-backend/embed"
	"ai4juris-backend/models"
)

const (
	// DefaultChunkSize bounds chunk length in characters.
	DefaultChunkSize = 512

	// maxChunksPerEmbedding caps how many chunks feed the mean vector of a
	// very long document. Bounded cost beats full recall here.
	maxChunksPerEmbedding = 5
)

// IndexService owns per-document and per-chunk embedding generation and
// persistence.
type IndexService struct {
	store     DocumentStore
	embedder  embed.Embedder
	chunkSize int
}

// IndexServiceOption is a functional option for IndexService
type IndexServiceOption func(*IndexService)

// IndexWithStore sets the document store
func IndexWithStore(store DocumentStore) IndexServiceOption {
	return func(s *IndexService) {
		s.store = store
	}
}

// IndexWithEmbedder sets the embedding model client
func IndexWithEmbedder(e embed.Embedder) IndexServiceOption {
	return func(s *IndexService) {
		s.embedder = e
	}
}

// IndexWithChunkSize overrides the default chunk length
func IndexWithChunkSize(size int) IndexServiceOption {
	return func(s *IndexService) {
		s.chunkSize = size
	}
}

// NewIndexService creates a new index service
func NewIndexService(opts ...IndexServiceOption) *IndexService {
	s := &IndexService{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChunkSize returns the configured chunk length
func (s *IndexService) ChunkSize() int {
	return s.chunkSize
}

// GenerateEmbedding embeds text into a vector of the embedder's dimension.
// Empty or whitespace-only text returns the zero vector ("no signal", not an
// error). With useChunking, text longer than twice the chunk size is split,
// capped at the first maxChunksPerEmbedding chunks, embedded per chunk and
// averaged element-wise. Otherwise the text is embedded directly, truncated
// to three chunk-lengths as a safety cap. Non-zero results are L2-normalized
// so stored vectors are unit length regardless of which path produced them.
func (s *IndexService) GenerateEmbedding(ctx context.Context, text string, useChunking bool) ([]float64, error) {
	if s.embedder == nil {
		return nil, errors.New("embedder not set")
	}
	if strings.TrimSpace(text) == "" {
		return make([]float64, s.embedder.Dim()), nil
	}

	if useChunking && len(text) > s.chunkSize*2 {
		chunks := chunker.Split(text, s.chunkSize)
		if len(chunks) > maxChunksPerEmbedding {
			chunks = chunks[:maxChunksPerEmbedding]
		}
		vecs, err := s.embedder.EmbedBatch(ctx, chunks)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunks: %w", err)
		}
		mean := embed.Mean(vecs)
		embed.NormalizeL2(mean)
		return mean, nil
	}

	vec, err := s.embedder.Embed(ctx, chunker.Truncate(text, s.chunkSize*3))
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	embed.NormalizeL2(vec)
	return vec, nil
}

// IndexDocument computes and persists the whole-document embedding
func (s *IndexService) IndexDocument(ctx context.Context, id int64, text string) error {
	if s.store == nil {
		return errors.New("document store not set")
	}

	embedding, err := s.GenerateEmbedding(ctx, text, true)
	if err != nil {
		return err
	}
	return s.store.UpdateEmbedding(ctx, id, embedding)
}

// IndexDocumentChunks replaces all existing chunks for a document with
// freshly computed, densely-ordered chunks and their embeddings. The
// replacement is atomic: readers never observe a partial chunk set.
func (s *IndexService) IndexDocumentChunks(ctx context.Context, id int64, text string) error {
	if s.store == nil {
		return errors.New("document store not set")
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("document %d has no text to chunk", id)
	}

	texts := chunker.Split(text, s.chunkSize)
	vecs, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks for document %d: %w", id, err)
	}

	chunks := make([]models.DocumentChunk, len(texts))
	for i, chunkText := range texts {
		embed.NormalizeL2(vecs[i])
		chunks[i] = models.DocumentChunk{
			DocID:      id,
			ChunkIndex: i,
			ChunkText:  chunkText,
			Embedding:  vecs[i],
		}
	}
	return s.store.ReplaceChunks(ctx, id, chunks)
}

// RebuildReport summarizes a RebuildMissing run.
type RebuildReport struct {
	DocumentsIndexed int `json:"documents_indexed"`
	DocumentsFailed  int `json:"documents_failed"`
	ChunkSetsBuilt   int `json:"chunk_sets_built"`
	ChunkSetsFailed  int `json:"chunk_sets_failed"`
}

// RebuildMissing finds documents lacking an embedding or lacking any chunks
// and processes them in batches. Each document commits independently, so an
// interrupted run loses at most the in-flight document and a restart skips
// everything already indexed. Per-document failures are logged and the run
// continues; the failing document stays in "needs indexing" state for the
// next pass.
func (s *IndexService) RebuildMissing(ctx context.Context, batchSize, limit int) (*RebuildReport, error) {
	if s.store == nil {
		return nil, errors.New("document store not set")
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	report := &RebuildReport{}
	if err := s.RebuildMissingEmbeddings(ctx, batchSize, limit, report); err != nil {
		return nil, err
	}
	if err := s.RebuildMissingChunks(ctx, batchSize, limit, report); err != nil {
		return nil, err
	}
	return report, nil
}

// RebuildMissingEmbeddings runs only the whole-document phase of a rebuild,
// accumulating into report.
func (s *IndexService) RebuildMissingEmbeddings(ctx context.Context, batchSize, limit int, report *RebuildReport) error {
	if s.store == nil {
		return errors.New("document store not set")
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	docs, err := s.store.ListMissingEmbeddings(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list documents missing embeddings: %w", err)
	}
	log.Printf("Found %d documents to index", len(docs))

	for i := 0; i < len(docs); i += batchSize {
		end := i + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		log.Printf("Processing batch %d/%d", i/batchSize+1, (len(docs)+batchSize-1)/batchSize)

		for _, doc := range docs[i:end] {
			if err := s.IndexDocument(ctx, doc.ID, doc.TextPlain); err != nil {
				log.Printf("Error indexing document %d: %v", doc.ID, err)
				report.DocumentsFailed++
				continue
			}
			report.DocumentsIndexed++
		}
		log.Printf("Indexed %d/%d documents", end, len(docs))
	}
	return nil
}

// RebuildMissingChunks runs only the chunk phase of a rebuild, accumulating
// into report.
func (s *IndexService) RebuildMissingChunks(ctx context.Context, batchSize, limit int, report *RebuildReport) error {
	if s.store == nil {
		return errors.New("document store not set")
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	docs, err := s.store.ListMissingChunks(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list documents missing chunks: %w", err)
	}
	log.Printf("Found %d documents to index as chunks", len(docs))

	for i := 0; i < len(docs); i += batchSize {
		end := i + batchSize
		if end > len(docs) {
			end = len(docs)
		}

		for _, doc := range docs[i:end] {
			if err := s.IndexDocumentChunks(ctx, doc.ID, doc.TextPlain); err != nil {
				log.Printf("Error indexing document chunks %d: %v", doc.ID, err)
				report.ChunkSetsFailed++
				continue
			}
			report.ChunkSetsBuilt++
		}
		log.Printf("Indexed %d/%d documents as chunks", end, len(docs))
	}
	return nil
}
