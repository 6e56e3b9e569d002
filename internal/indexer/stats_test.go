package indexer

import (
	"testing"

	"personalcolor-ai/internal/rag"
)

func TestComputeLengthStats(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   ChunkLengthStats
	}{
		{
			name:   "empty",
			counts: []int{},
			want:   ChunkLengthStats{},
		},
		{
			name:   "single value",
			counts: []int{10},
			want:   ChunkLengthStats{Min: 10, Max: 10, Mean: 10.0, P95: 10},
		},
		{
			name:   "unsorted values",
			counts: []int{30, 5, 20, 10, 15},
			want:   ChunkLengthStats{Min: 5, Max: 30, Mean: 16.0, P95: 30},
		},
		{
			name:   "many values for p95",
			counts: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
			want:   ChunkLengthStats{Min: 1, Max: 20, Mean: 10.5, P95: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeLengthStats(tt.counts)
			if got != tt.want {
				t.Errorf("computeLengthStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	ix, err := rag.NewIndex("color",
		[]rag.Chunk{{Text: "봄웜톤"}, {Text: "abcdefgh"}},
		[][]float32{{1, 0, 0}, {0, 1, 0}},
	)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	opts := Options{ChunkSize: 800, ChunkOverlap: 100, EmbeddingModel: "m"}

	stats := ComputeStats(ix, opts)
	if stats.Chunks != 2 {
		t.Errorf("Chunks = %d, want 2", stats.Chunks)
	}
	if stats.Dimensions != 3 {
		t.Errorf("Dimensions = %d, want 3", stats.Dimensions)
	}
	if stats.ChunkRuneStats.Min != 3 || stats.ChunkRuneStats.Max != 8 {
		t.Errorf("ChunkRuneStats = %+v, want min 3 max 8", stats.ChunkRuneStats)
	}
	if stats.ChunkTokenStats.Max != 2 {
		t.Errorf("ChunkTokenStats.Max = %d, want 2", stats.ChunkTokenStats.Max)
	}
	if stats.ChunkerVersion != ChunkerVersion {
		t.Errorf("ChunkerVersion = %s, want %s", stats.ChunkerVersion, ChunkerVersion)
	}
	if stats.IndexVersion != IndexVersion(opts) {
		t.Error("IndexVersion should be derived from options")
	}
	if IndexVersion(opts) == IndexVersion(Options{ChunkSize: 400, ChunkOverlap: 100, EmbeddingModel: "m"}) {
		t.Error("IndexVersion should change with chunk size")
	}

	empty := ComputeStats(rag.EmptyIndex("trend"), opts)
	if empty.Chunks != 0 || empty.Dimensions != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}
