package repository

import (
	"context"
	"fmt"

	"ai4juris-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for court ruling documents
// and their embedding chunks.
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a new document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO dgsi_documents (
			source, base_name, url, processo, sessao_date, relator,
			descritores, text_plain, decision_extra, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		doc.Source,
		doc.BaseName,
		doc.URL,
		doc.Processo,
		doc.SessaoDate,
		doc.Relator,
		doc.Descritores,
		doc.TextPlain,
		doc.DecisionExtra,
		doc.StoragePath,
	).Scan(&doc.ID, &doc.CreatedAt)
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, source, base_name, url, processo, sessao_date, relator,
		       descritores, text_plain, decision_extra, decision, storage_path, created_at
		FROM dgsi_documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Source,
		&doc.BaseName,
		&doc.URL,
		&doc.Processo,
		&doc.SessaoDate,
		&doc.Relator,
		&doc.Descritores,
		&doc.TextPlain,
		&doc.DecisionExtra,
		&doc.Decision,
		&doc.StoragePath,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ListAfterID pages through the corpus in id order (keyset pagination),
// returning only the fields the labeling pipeline needs. An empty sources
// slice means all sources.
func (r *DocumentRepository) ListAfterID(ctx context.Context, lastID int64, limit int, sources []string) ([]models.Document, error) {
	query := `
		SELECT id, source, decision_extra, text_plain, decision
		FROM dgsi_documents
		WHERE id > $1`
	args := []interface{}{lastID}
	if len(sources) > 0 {
		query += " AND source = ANY($2)"
		args = append(args, sources)
	}
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d", len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.Source, &doc.DecisionExtra, &doc.TextPlain, &doc.Decision); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// ListMissingEmbeddings returns documents without a whole-document embedding
func (r *DocumentRepository) ListMissingEmbeddings(ctx context.Context, limit int) ([]models.Document, error) {
	query := `
		SELECT id, text_plain
		FROM dgsi_documents
		WHERE embedding IS NULL
		ORDER BY id`
	return r.listIDText(ctx, query, limit)
}

// ListMissingChunks returns documents that have no chunks indexed
func (r *DocumentRepository) ListMissingChunks(ctx context.Context, limit int) ([]models.Document, error) {
	query := `
		SELECT d.id, d.text_plain
		FROM dgsi_documents d
		LEFT JOIN dgsi_document_chunks c ON d.id = c.doc_id
		WHERE c.id IS NULL
		GROUP BY d.id, d.text_plain
		ORDER BY d.id`
	return r.listIDText(ctx, query, limit)
}

func (r *DocumentRepository) listIDText(ctx context.Context, query string, limit int) ([]models.Document, error) {
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.TextPlain); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// UpdateEmbedding attaches the whole-document embedding vector
func (r *DocumentRepository) UpdateEmbedding(ctx context.Context, id int64, embedding []float64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE dgsi_documents SET embedding = $1::vector WHERE id = $2",
		formatVector(embedding), id)
	if err != nil {
		return fmt.Errorf("failed to update embedding for document %d: %w", id, err)
	}
	return nil
}

// ReplaceChunks atomically replaces all chunks for a document with a fresh,
// densely-ordered set. Delete and insert run in one transaction so no stale
// partial chunk set is ever visible.
func (r *DocumentRepository) ReplaceChunks(ctx context.Context, docID int64, chunks []models.DocumentChunk) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM dgsi_document_chunks WHERE doc_id = $1", docID); err != nil {
		return fmt.Errorf("failed to delete chunks for document %d: %w", docID, err)
	}

	query := `
		INSERT INTO dgsi_document_chunks (doc_id, chunk_index, chunk_text, embedding)
		VALUES ($1, $2, $3, $4::vector)`
	for _, chunk := range chunks {
		_, err := tx.Exec(ctx, query, docID, chunk.ChunkIndex, chunk.ChunkText, formatVector(chunk.Embedding))
		if err != nil {
			return fmt.Errorf("failed to insert chunk %d for document %d: %w", chunk.ChunkIndex, docID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit chunk replacement: %w", err)
	}
	return nil
}

// UpdateDecision persists the canonical decision label. The label must be
// one of the canonical classes or empty (unclassified); UNSURE is never
// stored.
func (r *DocumentRepository) UpdateDecision(ctx context.Context, id int64, label string) error {
	if label != "" && !models.IsCanonicalClass(label) {
		return fmt.Errorf("refusing to persist non-canonical label %q for document %d", label, id)
	}
	_, err := r.db.Exec(ctx,
		"UPDATE dgsi_documents SET decision = NULLIF($1, '') WHERE id = $2",
		label, id)
	if err != nil {
		return fmt.Errorf("failed to update decision for document %d: %w", id, err)
	}
	return nil
}

// SearchDocuments runs a whole-document nearest-neighbor query ordered by
// cosine distance, optionally filtered by source and/or canonical decision.
// Similarity is 1 - cosine_distance.
func (r *DocumentRepository) SearchDocuments(ctx context.Context, embedding []float64, topK int, filterSource, filterDecision string) ([]models.RetrievalResult, error) {
	vectorStr := formatVector(embedding)

	query := `
		SELECT id, url, processo, text_plain, source, sessao_date, descritores, decision,
		       1 - (embedding <=> $1::vector) AS similarity
		FROM dgsi_documents
		WHERE embedding IS NOT NULL`
	args := []interface{}{vectorStr}

	if filterSource != "" {
		args = append(args, filterSource)
		query += fmt.Sprintf(" AND source = $%d", len(args))
	}
	if filterDecision != "" {
		args = append(args, filterDecision)
		query += fmt.Sprintf(" AND decision = $%d", len(args))
	}

	args = append(args, topK)
	query += fmt.Sprintf(" ORDER BY embedding <=> $1::vector LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var results []models.RetrievalResult
	for rows.Next() {
		var res models.RetrievalResult
		err := rows.Scan(
			&res.ID,
			&res.URL,
			&res.Processo,
			&res.TextPlain,
			&res.Source,
			&res.SessaoDate,
			&res.Descritores,
			&res.Decision,
			&res.Similarity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retrieval result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// SearchChunks runs a chunk-level nearest-neighbor query joined with the
// owning document's metadata.
func (r *DocumentRepository) SearchChunks(ctx context.Context, embedding []float64, topK int, filterSource string) ([]models.ChunkRetrievalResult, error) {
	vectorStr := formatVector(embedding)

	query := `
		SELECT c.id, c.doc_id, c.chunk_index, c.chunk_text,
		       d.url, d.processo, d.source, d.sessao_date,
		       1 - (c.embedding <=> $1::vector) AS similarity
		FROM dgsi_document_chunks c
		JOIN dgsi_documents d ON c.doc_id = d.id
		WHERE c.embedding IS NOT NULL`
	args := []interface{}{vectorStr}

	if filterSource != "" {
		args = append(args, filterSource)
		query += fmt.Sprintf(" AND d.source = $%d", len(args))
	}

	args = append(args, topK)
	query += fmt.Sprintf(" ORDER BY c.embedding <=> $1::vector LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer rows.Close()

	var results []models.ChunkRetrievalResult
	for rows.Next() {
		var res models.ChunkRetrievalResult
		err := rows.Scan(
			&res.ChunkID,
			&res.DocID,
			&res.ChunkIndex,
			&res.ChunkText,
			&res.URL,
			&res.Processo,
			&res.Source,
			&res.SessaoDate,
			&res.Similarity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chunk result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// CorpusStats summarizes index coverage over the document corpus.
type CorpusStats struct {
	TotalDocuments   int64   `json:"total_documents"`
	IndexedDocuments int64   `json:"indexed_documents"`
	NotIndexed       int64   `json:"not_indexed"`
	IndexPercentage  float64 `json:"index_percentage"`
	LabeledDocuments int64   `json:"labeled_documents"`
	DocsWithChunks   int64   `json:"docs_with_chunks"`
	TotalChunks      int64   `json:"total_chunks"`
	AvgChunksPerDoc  float64 `json:"avg_chunks_per_doc"`
}

// Stats returns document and chunk index coverage
func (r *DocumentRepository) Stats(ctx context.Context) (*CorpusStats, error) {
	stats := &CorpusStats{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(embedding),
		       COUNT(*) - COUNT(embedding),
		       COUNT(decision)
		FROM dgsi_documents`).Scan(
		&stats.TotalDocuments,
		&stats.IndexedDocuments,
		&stats.NotIndexed,
		&stats.LabeledDocuments,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query document stats: %w", err)
	}
	if stats.TotalDocuments > 0 {
		stats.IndexPercentage = float64(stats.IndexedDocuments) / float64(stats.TotalDocuments) * 100
	}

	var avg *float64
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(chunk_count), 0), AVG(chunk_count)
		FROM (
			SELECT doc_id, COUNT(*) AS chunk_count
			FROM dgsi_document_chunks
			GROUP BY doc_id
		) AS chunk_counts`).Scan(
		&stats.DocsWithChunks,
		&stats.TotalChunks,
		&avg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk stats: %w", err)
	}
	if avg != nil {
		stats.AvgChunksPerDoc = *avg
	}

	return stats, nil
}
