package service

import (
	"context"

	"ai4juris-backend/models"
)

// DocumentStore is the slice of the document repository the indexing,
// retrieval and labeling services depend on. Keeping it narrow lets
// correctness tests run against an in-memory implementation instead of
// Postgres.
type DocumentStore interface {
	ListAfterID(ctx context.Context, lastID int64, limit int, sources []string) ([]models.Document, error)
	ListMissingEmbeddings(ctx context.Context, limit int) ([]models.Document, error)
	ListMissingChunks(ctx context.Context, limit int) ([]models.Document, error)
	UpdateEmbedding(ctx context.Context, id int64, embedding []float64) error
	ReplaceChunks(ctx context.Context, docID int64, chunks []models.DocumentChunk) error
	UpdateDecision(ctx context.Context, id int64, label string) error
	SearchDocuments(ctx context.Context, embedding []float64, topK int, filterSource, filterDecision string) ([]models.RetrievalResult, error)
	SearchChunks(ctx context.Context, embedding []float64, topK int, filterSource string) ([]models.ChunkRetrievalResult, error)
}
