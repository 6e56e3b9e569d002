package rag

import "fmt"

// Chunk is a trimmed window of a knowledge document.
type Chunk struct {
	// Text is the chunk text, never empty.
	Text string `json:"text"`
	// SourceOffset is the rune offset of the window start in the source document.
	SourceOffset int `json:"source_offset"`
}

// Index pairs chunks with their embeddings by position.
// An Index is read-only after construction and safe for concurrent use.
type Index struct {
	name       string
	chunks     []Chunk
	embeddings [][]float32
}

// NewIndex creates an index from parallel chunk and embedding slices.
func NewIndex(name string, chunks []Chunk, embeddings [][]float32) (*Index, error) {
	if len(chunks) != len(embeddings) {
		return nil, fmt.Errorf("index %q: %d chunks but %d embeddings", name, len(chunks), len(embeddings))
	}
	return &Index{
		name:       name,
		chunks:     chunks,
		embeddings: embeddings,
	}, nil
}

// EmptyIndex returns an index with zero chunks. Ranking against it yields no results.
func EmptyIndex(name string) *Index {
	return &Index{name: name}
}

// Name returns the index name (usually the knowledge source it was built from).
func (ix *Index) Name() string {
	if ix == nil {
		return ""
	}
	return ix.name
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.chunks)
}

// Chunk returns the i-th chunk.
func (ix *Index) Chunk(i int) Chunk {
	return ix.chunks[i]
}

// Embedding returns the i-th embedding vector.
func (ix *Index) Embedding(i int) []float32 {
	return ix.embeddings[i]
}

// Chunks returns a copy of the indexed chunks in source order.
func (ix *Index) Chunks() []Chunk {
	if ix == nil {
		return nil
	}
	out := make([]Chunk, len(ix.chunks))
	copy(out, ix.chunks)
	return out
}

// ScoredChunk is a ranked retrieval result.
type ScoredChunk struct {
	Chunk
	// Position is the chunk's position in the index.
	Position int `json:"position"`
	// Score is the cosine similarity to the query.
	Score float64 `json:"score"`
}
