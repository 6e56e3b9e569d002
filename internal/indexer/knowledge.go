package indexer

import (
	"context"

	"personalcolor-ai/internal/rag"
)

// Knowledge source names, used as index names and mirror payload sources.
const (
	SourcePersonalColor = "personal_color"
	SourceTrend         = "beauty_trend"
)

// KnowledgeSources returns the personal color and trend documents in build order.
func KnowledgeSources(personalColorPath, trendPath string) []Source {
	return []Source{
		{Name: SourcePersonalColor, Path: personalColorPath},
		{Name: SourceTrend, Path: trendPath},
	}
}

// BuildKnowledge builds the personal color and trend indexes. A source that
// cannot be read or embedded yields an empty index.
func (b *Builder) BuildKnowledge(ctx context.Context, personalColorPath, trendPath string) (personalColor, trend *rag.Index, err error) {
	indexes, err := b.BuildAll(ctx, KnowledgeSources(personalColorPath, trendPath)...)
	if err != nil {
		return nil, nil, err
	}
	return indexes[0], indexes[1], nil
}
