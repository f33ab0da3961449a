// Package embed provides embedding-model clients behind a single interface.
package embed

import (
	"context"
	"fmt"
	"log"
	"math"
)

// Embedder turns text into a fixed-length float vector. Dim is declared at
// construction and verified against the model's actual output on startup.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
	Dim() int
}

// verifyDim probes the model with a test string and compares the declared
// dimension against the actual output. A mismatch adopts the actual
// dimension via set and logs a warning; it is not fatal.
func verifyDim(ctx context.Context, e Embedder, set func(int)) error {
	vec, err := e.Embed(ctx, "test")
	if err != nil {
		return fmt.Errorf("failed to probe embedding dimension: %w", err)
	}
	if len(vec) == 0 {
		return fmt.Errorf("embedding model returned an empty vector during dimension probe")
	}
	if len(vec) != e.Dim() {
		log.Printf("Warning: embedding model produces %dD vectors, not %dD; adopting %dD",
			len(vec), e.Dim(), len(vec))
		set(len(vec))
	}
	return nil
}

// NormalizeL2 scales vec to unit length in place. Zero vectors are left
// untouched.
func NormalizeL2(vec []float64) {
	var sumSq float64
	for _, v := range vec {
		sumSq += v * v
	}
	if sumSq == 0 {
		return
	}
	norm := math.Sqrt(sumSq)
	for i := range vec {
		vec[i] /= norm
	}
}

// Mean returns the element-wise mean of the given vectors. All vectors must
// share the same length.
func Mean(vecs [][]float64) []float64 {
	if len(vecs) == 0 {
		return nil
	}
	out := make([]float64, len(vecs[0]))
	for _, vec := range vecs {
		for i, v := range vec {
			out[i] += v
		}
	}
	for i := range out {
		out[i] /= float64(len(vecs))
	}
	return out
}

func toFloat64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
