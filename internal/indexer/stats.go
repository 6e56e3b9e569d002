package indexer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"personalcolor-ai/internal/rag"
)

const (
	// ChunkerVersion is the version identifier for the chunker implementation.
	// Update this when chunking logic changes significantly.
	ChunkerVersion = "v1.0"
	// TokensPerRune is an approximation for token counting (4 chars per token).
	TokensPerRune = 4.0
)

// IndexStats describes one built knowledge index.
type IndexStats struct {
	// Name is the knowledge source name.
	Name string `json:"name"`
	// Chunks is the number of indexed chunks.
	Chunks int `json:"chunks"`
	// Dimensions is the embedding vector size, 0 for an empty index.
	Dimensions int `json:"dimensions"`
	// ChunkRuneStats contains statistics about characters per chunk.
	ChunkRuneStats ChunkLengthStats `json:"chunk_rune_stats"`
	// ChunkTokenStats contains approximate token counts per chunk.
	ChunkTokenStats ChunkLengthStats `json:"chunk_token_stats"`
	// ChunkerVersion is the version of the chunker used.
	ChunkerVersion string `json:"chunker_version"`
	// IndexVersion is a hash identifying the index build (chunker + embedding model + params).
	IndexVersion string `json:"index_version"`
}

// ChunkLengthStats contains min, max, mean and p95 of a per-chunk measure.
type ChunkLengthStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
}

// ComputeStats summarizes an index built with the given options.
func ComputeStats(ix *rag.Index, opts Options) IndexStats {
	stats := IndexStats{
		Name:           ix.Name(),
		Chunks:         ix.Len(),
		ChunkerVersion: ChunkerVersion,
		IndexVersion:   IndexVersion(opts),
	}
	if ix.Len() == 0 {
		return stats
	}

	stats.Dimensions = len(ix.Embedding(0))

	runeCounts := make([]int, ix.Len())
	tokenCounts := make([]int, ix.Len())
	for i := 0; i < ix.Len(); i++ {
		n := utf8.RuneCountInString(ix.Chunk(i).Text)
		runeCounts[i] = n
		tokenCounts[i] = int(math.Ceil(float64(n) / TokensPerRune))
	}
	stats.ChunkRuneStats = computeLengthStats(runeCounts)
	stats.ChunkTokenStats = computeLengthStats(tokenCounts)
	return stats
}

// IndexVersion hashes the parameters that determine index contents.
func IndexVersion(opts Options) string {
	key := fmt.Sprintf("%s|%s|%d|%d", ChunkerVersion, opts.EmbeddingModel, opts.ChunkSize, opts.ChunkOverlap)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:16]
}

// computeLengthStats computes min, max, mean, and p95 from counts.
func computeLengthStats(counts []int) ChunkLengthStats {
	if len(counts) == 0 {
		return ChunkLengthStats{}
	}

	// Sort for percentile calculation
	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)

	sum := 0
	for _, c := range counts {
		sum += c
	}
	mean := float64(sum) / float64(len(counts))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return ChunkLengthStats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: math.Round(mean*100) / 100, // Round to 2 decimal places
		P95:  sorted[p95Index],
	}
}
