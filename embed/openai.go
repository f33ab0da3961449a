package embed

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used unless EMBEDDING_MODEL overrides it. Any
// OpenAI-compatible endpoint works, including a locally served
// sentence-transformers model behind an adapter.
const DefaultOpenAIModel = "text-embedding-3-small"

// OpenAIEmbedder produces embeddings through an OpenAI-compatible API.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
	dim    int
}

// NewOpenAIEmbedder creates the client and verifies the declared dimension
// against the model's actual output.
func NewOpenAIEmbedder(ctx context.Context, apiKey, baseURL, modelName string, dim int) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}
	if dim <= 0 {
		dim = DefaultDim
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	e := &OpenAIEmbedder{
		client: openai.NewClientWithConfig(clientConfig),
		model:  modelName,
		dim:    dim,
	}
	if err := verifyDim(ctx, e, func(d int) { e.dim = d }); err != nil {
		return nil, err
	}
	return e, nil
}

// Embed returns the embedding for a single text.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch embeds several texts in one API call.
func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("mismatch: got %d embeddings for %d texts", len(resp.Data), len(texts))
	}

	out := make([][]float64, len(resp.Data))
	for _, item := range resp.Data {
		if len(item.Embedding) == 0 {
			return nil, fmt.Errorf("text %d has empty embedding", item.Index)
		}
		out[item.Index] = toFloat64(item.Embedding)
	}
	return out, nil
}

// Dim returns the verified embedding dimensionality.
func (e *OpenAIEmbedder) Dim() int {
	return e.dim
}
