package rag

import (
	"math"
	"sort"
)

// normFloor keeps cosine similarity defined for all-zero vectors.
const normFloor = 1e-8

// CosineSimilarity returns dot(a, b) / (|a| * |b|) with both norms floored at 1e-8.
// Vectors of different length are compared over their common prefix.
func CosineSimilarity(a, b []float32) float64 {
	n := min(len(a), len(b))

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}

	na := math.Sqrt(normA)
	if na == 0 {
		na = normFloor
	}
	nb := math.Sqrt(normB)
	if nb == 0 {
		nb = normFloor
	}
	return dot / (na * nb)
}

// Rank scores every chunk of the index against the query and returns the best k,
// sorted by descending similarity. Equal scores keep index order.
func Rank(query []float32, ix *Index, k int) []ScoredChunk {
	if k <= 0 || ix.Len() == 0 {
		return nil
	}

	scored := make([]ScoredChunk, ix.Len())
	for i := range scored {
		scored[i] = ScoredChunk{
			Chunk:    ix.Chunk(i),
			Position: i,
			Score:    CosineSimilarity(query, ix.Embedding(i)),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// TopK returns the texts of the k chunks most similar to the query.
func TopK(query []float32, ix *Index, k int) []string {
	ranked := Rank(query, ix, k)
	texts := make([]string, len(ranked))
	for i, r := range ranked {
		texts[i] = r.Text
	}
	return texts
}
