package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"ai4juris-backend/models"
)

// fakeEmbedder produces deterministic vectors without network access. The
// vector encodes simple text statistics so that identical texts embed
// identically and different texts usually differ.
type fakeEmbedder struct {
	dim        int
	embedCalls int
	batchCalls int
	failAll    bool
}

func newFakeEmbedder(dim int) *fakeEmbedder {
	return &fakeEmbedder{dim: dim}
}

func (e *fakeEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	e.embedCalls++
	if e.failAll {
		return nil, fmt.Errorf("embedder unavailable")
	}
	vec := make([]float64, e.dim)
	for i, r := range text {
		vec[i%e.dim] += float64(r%31) + 1
	}
	vec[0] += float64(len(strings.Fields(text)))
	return vec, nil
}

func (e *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	e.batchCalls++
	if e.failAll {
		return nil, fmt.Errorf("embedder unavailable")
	}
	out := make([][]float64, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		e.embedCalls--
		out[i] = vec
	}
	return out, nil
}

func (e *fakeEmbedder) Dim() int {
	return e.dim
}

// fakeStore is an in-memory DocumentStore with cosine ranking, standing in
// for the Postgres repository in service tests.
type fakeStore struct {
	mu     sync.Mutex
	docs   map[int64]*models.Document
	chunks map[int64][]models.DocumentChunk

	failUpdateFor map[int64]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:          make(map[int64]*models.Document),
		chunks:        make(map[int64][]models.DocumentChunk),
		failUpdateFor: make(map[int64]bool),
	}
}

func (s *fakeStore) addDoc(doc models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := doc
	s.docs[doc.ID] = &d
}

func (s *fakeStore) sortedIDs() []int64 {
	ids := make([]int64, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *fakeStore) ListAfterID(ctx context.Context, lastID int64, limit int, sources []string) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []models.Document
	for _, id := range s.sortedIDs() {
		if id <= lastID {
			continue
		}
		doc := s.docs[id]
		if len(sources) > 0 && !containsString(sources, doc.Source) {
			continue
		}
		docs = append(docs, *doc)
		if len(docs) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *fakeStore) ListMissingEmbeddings(ctx context.Context, limit int) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []models.Document
	for _, id := range s.sortedIDs() {
		doc := s.docs[id]
		if doc.Embedding != nil {
			continue
		}
		docs = append(docs, *doc)
		if limit > 0 && len(docs) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *fakeStore) ListMissingChunks(ctx context.Context, limit int) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []models.Document
	for _, id := range s.sortedIDs() {
		if len(s.chunks[id]) > 0 {
			continue
		}
		docs = append(docs, *s.docs[id])
		if limit > 0 && len(docs) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *fakeStore) UpdateEmbedding(ctx context.Context, id int64, embedding []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failUpdateFor[id] {
		return fmt.Errorf("simulated write failure for document %d", id)
	}
	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("document %d not found", id)
	}
	doc.Embedding = embedding
	return nil
}

func (s *fakeStore) ReplaceChunks(ctx context.Context, docID int64, chunks []models.DocumentChunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failUpdateFor[docID] {
		return fmt.Errorf("simulated write failure for document %d", docID)
	}
	if _, ok := s.docs[docID]; !ok {
		return fmt.Errorf("document %d not found", docID)
	}
	s.chunks[docID] = append([]models.DocumentChunk(nil), chunks...)
	return nil
}

func (s *fakeStore) UpdateDecision(ctx context.Context, id int64, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if label != "" && !models.IsCanonicalClass(label) {
		return fmt.Errorf("refusing to persist non-canonical label %q", label)
	}
	if s.failUpdateFor[id] {
		return fmt.Errorf("simulated write failure for document %d", id)
	}
	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("document %d not found", id)
	}
	if label == "" {
		doc.Decision = nil
	} else {
		doc.Decision = &label
	}
	return nil
}

func (s *fakeStore) SearchDocuments(ctx context.Context, embedding []float64, topK int, filterSource, filterDecision string) ([]models.RetrievalResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []models.RetrievalResult
	for _, id := range s.sortedIDs() {
		doc := s.docs[id]
		if doc.Embedding == nil {
			continue
		}
		if filterSource != "" && doc.Source != filterSource {
			continue
		}
		if filterDecision != "" && (doc.Decision == nil || *doc.Decision != filterDecision) {
			continue
		}
		results = append(results, models.RetrievalResult{
			ID:          doc.ID,
			URL:         doc.URL,
			Processo:    doc.Processo,
			TextPlain:   doc.TextPlain,
			Source:      doc.Source,
			SessaoDate:  doc.SessaoDate,
			Descritores: doc.Descritores,
			Decision:    doc.Decision,
			Similarity:  cosineSimilarity(embedding, doc.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func (s *fakeStore) SearchChunks(ctx context.Context, embedding []float64, topK int, filterSource string) ([]models.ChunkRetrievalResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []models.ChunkRetrievalResult
	for _, id := range s.sortedIDs() {
		doc := s.docs[id]
		if filterSource != "" && doc.Source != filterSource {
			continue
		}
		for _, chunk := range s.chunks[id] {
			results = append(results, models.ChunkRetrievalResult{
				ChunkID:    chunk.ID,
				DocID:      doc.ID,
				ChunkIndex: chunk.ChunkIndex,
				ChunkText:  chunk.ChunkText,
				URL:        doc.URL,
				Processo:   doc.Processo,
				Source:     doc.Source,
				SessaoDate: doc.SessaoDate,
				Similarity: cosineSimilarity(embedding, chunk.Embedding),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// chunkStats aggregates chunk coverage the way the repository's corpus
// stats query does: one row per document with chunks, totals summed over
// every chunk.
func (s *fakeStore) chunkStats() (docsWithChunks, totalChunks int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, chunks := range s.chunks {
		if len(chunks) == 0 {
			continue
		}
		docsWithChunks++
		totalChunks += int64(len(chunks))
	}
	return docsWithChunks, totalChunks
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
