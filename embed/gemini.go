package embed

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

const (
	// DefaultGeminiModel is the embedding model used unless overridden.
	DefaultGeminiModel = "text-embedding-004"

	// DefaultDim matches the reference deployment's 768-dimensional index.
	DefaultDim = 768
)

// GeminiEmbedder produces embeddings through the Gemini API.
type GeminiEmbedder struct {
	model *genai.EmbeddingModel
	dim   int
}

// NewGeminiEmbedder wraps an existing genai client. The declared dimension
// is verified against the model's actual output; a mismatch adopts the
// actual dimension with a warning.
func NewGeminiEmbedder(ctx context.Context, client *genai.Client, modelName string, dim int) (*GeminiEmbedder, error) {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	if dim <= 0 {
		dim = DefaultDim
	}

	em := client.EmbeddingModel(modelName)
	em.TaskType = genai.TaskTypeRetrievalDocument

	e := &GeminiEmbedder{model: em, dim: dim}
	if err := verifyDim(ctx, e, func(d int) { e.dim = d }); err != nil {
		return nil, err
	}
	return e, nil
}

// Embed returns the embedding for a single text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	res, err := e.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding response contains no values")
	}
	return toFloat64(res.Embedding.Values), nil
}

// EmbedBatch embeds several texts in one API call.
func (e *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	batch := e.model.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	res, err := e.model.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to batch embed contents: %w", err)
	}
	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("mismatch: got %d embeddings for %d texts", len(res.Embeddings), len(texts))
	}

	out := make([][]float64, len(res.Embeddings))
	for i, emb := range res.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("text %d has empty embedding", i)
		}
		out[i] = toFloat64(emb.Values)
	}
	return out, nil
}

// Dim returns the verified embedding dimensionality.
func (e *GeminiEmbedder) Dim() int {
	return e.dim
}
