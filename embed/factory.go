package embed

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// NewFromEnv constructs the embedding provider selected by
// EMBEDDING_PROVIDER ("gemini" by default, or "openai"). Model and declared
// dimension come from EMBEDDING_MODEL and EMBEDDING_DIM.
func NewFromEnv(ctx context.Context) (Embedder, error) {
	provider := strings.ToLower(os.Getenv("EMBEDDING_PROVIDER"))
	modelName := os.Getenv("EMBEDDING_MODEL")

	dim := DefaultDim
	if v := os.Getenv("EMBEDDING_DIM"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EMBEDDING_DIM %q: %w", v, err)
		}
		dim = parsed
	}

	switch provider {
	case "", "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return NewGeminiEmbedder(ctx, client, modelName, dim)

	case "openai":
		return NewOpenAIEmbedder(ctx,
			os.Getenv("OPENAI_API_KEY"),
			os.Getenv("OPENAI_BASE_URL"),
			modelName,
			dim,
		)

	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: gemini, openai)", provider)
	}
}
