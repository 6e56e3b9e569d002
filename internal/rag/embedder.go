package rag

import "context"

//go:generate mockgen -destination=mocks/mock_embedder.go -package=mocks personalcolor-ai/internal/rag Embedder

// Embedder maps texts to dense vectors, one per input, in input order.
// *llm.EmbeddingsClient satisfies this interface.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
