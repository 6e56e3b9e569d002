package indexer

import (
	"context"
	"errors"
	"fmt"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/rag"
)

// Options are the static parameters of an index build.
type Options struct {
	ChunkSize      int
	ChunkOverlap   int
	EmbeddingModel string
}

// Source names one knowledge document.
type Source struct {
	Name string
	Path string
}

// Publisher receives every successfully built index, e.g. to mirror it into a vector database.
type Publisher interface {
	Publish(ctx context.Context, ix *rag.Index) error
}

// Builder turns knowledge documents into in-memory RAG indexes.
type Builder struct {
	embedder  rag.Embedder
	opts      Options
	publisher Publisher
}

// NewBuilder creates a builder. Invalid chunk parameters return a *ConfigurationError.
func NewBuilder(embedder rag.Embedder, opts Options) (*Builder, error) {
	if err := ValidateChunkParams(opts.ChunkSize, opts.ChunkOverlap); err != nil {
		return nil, err
	}
	return &Builder{
		embedder: embedder,
		opts:     opts,
	}, nil
}

// WithPublisher sets an optional publisher called after each successful build.
func (b *Builder) WithPublisher(p Publisher) *Builder {
	b.publisher = p
	return b
}

// Options returns the builder's parameters.
func (b *Builder) Options() Options {
	return b.opts
}

// Build reads the source (a document or a directory of documents), chunks it and
// embeds all chunks in one batch. A missing or unreadable source returns an error
// wrapping ErrKnowledgeSourceUnavailable.
func (b *Builder) Build(ctx context.Context, src Source) (*rag.Index, error) {
	logger := contextutil.LoggerFromContext(ctx)

	content, err := ReadSource(src.Path)
	if err != nil {
		return nil, err
	}

	chunks, err := ChunkText(content, b.opts.ChunkSize, b.opts.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		logger.WarnContext(ctx, "no chunks generated", "source", src.Name, "path", src.Path)
		return rag.EmptyIndex(src.Name), nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	embeddings, err := b.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks of %s: %w", src.Name, err)
	}

	ix, err := rag.NewIndex(src.Name, chunks, embeddings)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble index: %w", err)
	}

	logger.InfoContext(ctx, "built knowledge index",
		"source", src.Name,
		"path", src.Path,
		"chunks", ix.Len(),
	)

	if b.publisher != nil {
		if err := b.publisher.Publish(ctx, ix); err != nil {
			logger.WarnContext(ctx, "failed to publish index", "source", src.Name, "error", err)
		}
	}

	return ix, nil
}

// BuildOrEmpty builds the index and substitutes an empty one when the knowledge source
// is unavailable or embedding fails. Only configuration errors are returned.
func (b *Builder) BuildOrEmpty(ctx context.Context, src Source) (*rag.Index, error) {
	ix, err := b.Build(ctx, src)
	if err == nil {
		return ix, nil
	}

	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return nil, err
	}

	contextutil.LoggerFromContext(ctx).WarnContext(ctx, "knowledge index unavailable, continuing with empty index",
		"source", src.Name,
		"path", src.Path,
		"error", err,
	)
	return rag.EmptyIndex(src.Name), nil
}

// BuildAll builds one index per source, in order, degrading each to empty on failure.
func (b *Builder) BuildAll(ctx context.Context, sources ...Source) ([]*rag.Index, error) {
	indexes := make([]*rag.Index, 0, len(sources))
	for _, src := range sources {
		ix, err := b.BuildOrEmpty(ctx, src)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, ix)
	}
	return indexes, nil
}
