package vectorstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/rag"
)

// Payload keys written for every mirrored chunk.
const (
	PayloadSource   = "source"
	PayloadPosition = "position"
	PayloadOffset   = "offset"
	PayloadText     = "text"
)

// upsertBatchSize bounds the number of points per upsert request.
const upsertBatchSize = 256

// Mirror copies built knowledge indexes into a vector store for external
// inspection. Retrieval never reads from the mirror.
type Mirror struct {
	store      VectorStore
	collection string
}

// NewMirror creates a mirror writing into collection.
func NewMirror(store VectorStore, collection string) *Mirror {
	return &Mirror{store: store, collection: collection}
}

// Collection returns the target collection name.
func (m *Mirror) Collection() string {
	return m.collection
}

// Publish replaces the mirrored points of ix's source with the current chunks.
// Empty indexes are skipped.
func (m *Mirror) Publish(ctx context.Context, ix *rag.Index) error {
	logger := contextutil.LoggerFromContext(ctx)

	if ix.Len() == 0 {
		logger.DebugContext(ctx, "skipping mirror of empty index", "source", ix.Name())
		return nil
	}

	if err := m.store.EnsureCollection(ctx, m.collection, len(ix.Embedding(0))); err != nil {
		return fmt.Errorf("failed to prepare collection %s: %w", m.collection, err)
	}
	if err := m.store.DeleteBySource(ctx, m.collection, ix.Name()); err != nil {
		return err
	}

	points := Points(ix)
	for start := 0; start < len(points); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(points))
		if err := m.store.Upsert(ctx, m.collection, points[start:end]); err != nil {
			return fmt.Errorf("failed to mirror %s: %w", ix.Name(), err)
		}
	}

	logger.InfoContext(ctx, "mirrored knowledge index",
		"source", ix.Name(),
		"collection", m.collection,
		"points", len(points),
	)
	return nil
}

// Points converts every chunk of ix into a vector point.
func Points(ix *rag.Index) []Point {
	points := make([]Point, ix.Len())
	for i := range points {
		c := ix.Chunk(i)
		points[i] = Point{
			ID:  PointID(ix.Name(), i),
			Vec: ix.Embedding(i),
			Meta: map[string]any{
				PayloadSource:   ix.Name(),
				PayloadPosition: i,
				PayloadOffset:   c.SourceOffset,
				PayloadText:     c.Text,
			},
		}
	}
	return points
}

// PointID returns the deterministic point id of a chunk, so rebuilding an
// index overwrites its previous points.
func PointID(source string, position int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "personalcolor:%s#%d", source, position)).String()
}
