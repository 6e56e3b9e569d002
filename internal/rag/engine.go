package rag

import (
	"context"

	"personalcolor-ai/internal/contextutil"
)

// Query asks for the top K chunks of one index.
type Query struct {
	Index *Index
	K     int
}

// Engine retrieves supporting passages for a query text.
type Engine interface {
	// Retrieve embeds text once and ranks each query's index independently.
	// The result has one entry per query, in query order. Retrieval never fails:
	// an embedding error or an empty index yields empty passages.
	Retrieve(ctx context.Context, text string, queries ...Query) [][]string
}

// ragEngine implements the Engine interface.
type ragEngine struct {
	embedder Embedder
}

// NewEngine creates a new retrieval engine.
func NewEngine(embedder Embedder) Engine {
	return &ragEngine{embedder: embedder}
}

// Retrieve implements Engine.
func (e *ragEngine) Retrieve(ctx context.Context, text string, queries ...Query) [][]string {
	logger := contextutil.LoggerFromContext(ctx)
	results := make([][]string, len(queries))

	total := 0
	for _, q := range queries {
		total += q.Index.Len()
	}
	if total == 0 {
		logger.DebugContext(ctx, "all indexes empty, skipping query embedding")
		return results
	}

	embeddings, err := e.embedder.EmbedTexts(ctx, []string{text})
	if err != nil {
		logger.WarnContext(ctx, "failed to embed retrieval query, continuing without context", "error", err)
		return results
	}
	if len(embeddings) == 0 {
		logger.WarnContext(ctx, "no embedding returned for retrieval query")
		return results
	}
	queryVector := embeddings[0]

	for i, q := range queries {
		results[i] = TopK(queryVector, q.Index, q.K)
		logger.DebugContext(ctx, "retrieved passages",
			"index", q.Index.Name(),
			"k", q.K,
			"returned", len(results[i]),
		)
	}
	return results
}
