package indexer

import (
	"strings"
	"unicode"

	"personalcolor-ai/internal/rag"
)

const (
	// DefaultChunkSize is the window length in characters.
	DefaultChunkSize = 800
	// DefaultChunkOverlap is the number of characters shared by consecutive windows.
	DefaultChunkOverlap = 100
)

// ValidateChunkParams checks that chunkSize is positive and 0 <= overlap < chunkSize.
func ValidateChunkParams(chunkSize, overlap int) error {
	if chunkSize <= 0 {
		return &ConfigurationError{Field: "chunk_size", Message: "must be positive"}
	}
	if overlap < 0 {
		return &ConfigurationError{Field: "chunk_overlap", Message: "must not be negative"}
	}
	if overlap >= chunkSize {
		return &ConfigurationError{Field: "chunk_overlap", Message: "must be smaller than chunk_size"}
	}
	return nil
}

// ChunkText splits text into overlapping windows of chunkSize characters, advancing
// by chunkSize-overlap. Each window is trimmed and empty windows are dropped.
// Sizes and offsets are counted in runes so multi-byte text is never split mid-character.
func ChunkText(text string, chunkSize, overlap int) ([]rag.Chunk, error) {
	if err := ValidateChunkParams(chunkSize, overlap); err != nil {
		return nil, err
	}

	runes := []rune(text)
	stride := chunkSize - overlap
	var chunks []rag.Chunk

	for start := 0; start < len(runes); start += stride {
		end := min(start+chunkSize, len(runes))
		window := runes[start:end]

		lead := 0
		for lead < len(window) && unicode.IsSpace(window[lead]) {
			lead++
		}
		trimmed := strings.TrimSpace(string(window))
		if trimmed != "" {
			chunks = append(chunks, rag.Chunk{
				Text:         trimmed,
				SourceOffset: start + lead,
			})
		}

		if end == len(runes) {
			break
		}
	}

	return chunks, nil
}
