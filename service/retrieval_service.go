package service

import (
	"context"
	"errors"
	"fmt"

	"ai4juris-backend/models"
)

// RetrievalService executes ranked nearest-neighbor queries against the
// embedding index.
type RetrievalService struct {
	store DocumentStore
	index *IndexService
}

// RetrievalServiceOption is a functional option for RetrievalService
type RetrievalServiceOption func(*RetrievalService)

// RetrievalWithStore sets the document store
func RetrievalWithStore(store DocumentStore) RetrievalServiceOption {
	return func(s *RetrievalService) {
		s.store = store
	}
}

// RetrievalWithIndexService sets the index service used to embed queries
func RetrievalWithIndexService(index *IndexService) RetrievalServiceOption {
	return func(s *RetrievalService) {
		s.index = index
	}
}

// NewRetrievalService creates a new retrieval service
func NewRetrievalService(opts ...RetrievalServiceOption) *RetrievalService {
	s := &RetrievalService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// embedQuery embeds query text directly, without chunk averaging: queries
// are short and averaging dilutes their focus. An empty query yields the
// zero vector and the search still executes against it.
func (s *RetrievalService) embedQuery(ctx context.Context, query string) ([]float64, error) {
	if s.index == nil {
		return nil, errors.New("index service not set")
	}
	return s.index.GenerateEmbedding(ctx, query, false)
}

// Retrieve returns up to topK documents ranked by descending cosine
// similarity to the query, optionally restricted to one source. The
// minSimilarity threshold applies after ranking, so fewer than topK results
// may survive.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, topK int, filterSource string, minSimilarity float64) ([]models.RetrievalResult, error) {
	if s.store == nil {
		return nil, errors.New("document store not set")
	}

	embedding, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.SearchDocuments(ctx, embedding, topK, filterSource, "")
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}
	return filterBySimilarity(candidates, minSimilarity), nil
}

// RetrieveByClass is Retrieve restricted to documents whose canonical
// decision label matches class; the restriction applies before ranking.
func (s *RetrievalService) RetrieveByClass(ctx context.Context, query string, topK int, class, filterSource string, minSimilarity float64) ([]models.RetrievalResult, error) {
	if s.store == nil {
		return nil, errors.New("document store not set")
	}
	if !models.IsCanonicalClass(class) {
		return nil, fmt.Errorf("unknown canonical class: %s", class)
	}

	embedding, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.SearchDocuments(ctx, embedding, topK, filterSource, class)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents by class: %w", err)
	}
	return filterBySimilarity(candidates, minSimilarity), nil
}

// RetrieveChunks returns up to topK chunk-level results ranked by descending
// cosine similarity.
func (s *RetrievalService) RetrieveChunks(ctx context.Context, query string, topK int, filterSource string, minSimilarity float64) ([]models.ChunkRetrievalResult, error) {
	if s.store == nil {
		return nil, errors.New("document store not set")
	}

	embedding, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.SearchChunks(ctx, embedding, topK, filterSource)
	if err != nil {
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}

	var results []models.ChunkRetrievalResult
	for _, c := range candidates {
		if c.Similarity >= minSimilarity {
			results = append(results, c)
		}
	}
	return results, nil
}

func filterBySimilarity(candidates []models.RetrievalResult, minSimilarity float64) []models.RetrievalResult {
	var results []models.RetrievalResult
	for _, c := range candidates {
		if c.Similarity >= minSimilarity {
			results = append(results, c)
		}
	}
	return results
}
