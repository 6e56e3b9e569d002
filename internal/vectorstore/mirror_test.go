package vectorstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"personalcolor-ai/internal/indexer"
	"personalcolor-ai/internal/rag"
	"personalcolor-ai/internal/vectorstore"
	"personalcolor-ai/internal/vectorstore/mocks"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newIndex(t *testing.T, name string, n int) *rag.Index {
	t.Helper()

	chunks := make([]rag.Chunk, n)
	vecs := make([][]float32, n)
	for i := range chunks {
		chunks[i] = rag.Chunk{Text: strings.Repeat("가", i+1), SourceOffset: i * 700}
		vecs[i] = []float32{float32(i), 1, 0}
	}
	ix, err := rag.NewIndex(name, chunks, vecs)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	return ix
}

func TestMirror_ImplementsPublisher(t *testing.T) {
	var _ indexer.Publisher = (*vectorstore.Mirror)(nil)
}

func TestMirror_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockVectorStore(ctrl)
	mirror := vectorstore.NewMirror(store, "knowledge")
	ix := newIndex(t, "personal_color", 3)

	gomock.InOrder(
		store.EXPECT().EnsureCollection(gomock.Any(), "knowledge", 3).Return(nil),
		store.EXPECT().DeleteBySource(gomock.Any(), "knowledge", "personal_color").Return(nil),
		store.EXPECT().
			Upsert(gomock.Any(), "knowledge", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, points []vectorstore.Point) error {
				if len(points) != 3 {
					t.Fatalf("Upsert() got %d points, want 3", len(points))
				}
				p := points[1]
				if p.ID != vectorstore.PointID("personal_color", 1) {
					t.Errorf("point id = %s", p.ID)
				}
				if p.Meta[vectorstore.PayloadSource] != "personal_color" ||
					p.Meta[vectorstore.PayloadPosition] != 1 ||
					p.Meta[vectorstore.PayloadOffset] != 700 ||
					p.Meta[vectorstore.PayloadText] != "가가" {
					t.Errorf("point meta = %v", p.Meta)
				}
				return nil
			}),
	)

	if err := mirror.Publish(context.Background(), ix); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
}

func TestMirror_Publish_Batches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockVectorStore(ctrl)
	mirror := vectorstore.NewMirror(store, "knowledge")
	ix := newIndex(t, "trend", 300)

	store.EXPECT().EnsureCollection(gomock.Any(), "knowledge", 3).Return(nil)
	store.EXPECT().DeleteBySource(gomock.Any(), "knowledge", "trend").Return(nil)

	var sizes []int
	store.EXPECT().
		Upsert(gomock.Any(), "knowledge", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, points []vectorstore.Point) error {
			sizes = append(sizes, len(points))
			return nil
		}).
		Times(2)

	if err := mirror.Publish(context.Background(), ix); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(sizes) != 2 || sizes[0] != 256 || sizes[1] != 44 {
		t.Errorf("batch sizes = %v, want [256 44]", sizes)
	}
}

func TestMirror_Publish_EmptyIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No store calls are expected.
	mirror := vectorstore.NewMirror(mocks.NewMockVectorStore(ctrl), "knowledge")
	if err := mirror.Publish(context.Background(), rag.EmptyIndex("trend")); err != nil {
		t.Errorf("Publish() error = %v", err)
	}
}

func TestMirror_Publish_Errors(t *testing.T) {
	storeErr := errors.New("qdrant unavailable")

	tests := []struct {
		name  string
		setup func(*mocks.MockVectorStore)
	}{
		{
			name: "ensure collection fails",
			setup: func(s *mocks.MockVectorStore) {
				s.EXPECT().EnsureCollection(gomock.Any(), gomock.Any(), gomock.Any()).Return(storeErr)
			},
		},
		{
			name: "delete fails",
			setup: func(s *mocks.MockVectorStore) {
				s.EXPECT().EnsureCollection(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.EXPECT().DeleteBySource(gomock.Any(), gomock.Any(), gomock.Any()).Return(storeErr)
			},
		},
		{
			name: "upsert fails",
			setup: func(s *mocks.MockVectorStore) {
				s.EXPECT().EnsureCollection(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.EXPECT().DeleteBySource(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(storeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockVectorStore(ctrl)
			tt.setup(store)

			err := vectorstore.NewMirror(store, "knowledge").Publish(context.Background(), newIndex(t, "personal_color", 2))
			if !errors.Is(err, storeErr) {
				t.Errorf("Publish() error = %v, want %v", err, storeErr)
			}
		})
	}
}

func TestPointID(t *testing.T) {
	a := vectorstore.PointID("personal_color", 0)
	if a != vectorstore.PointID("personal_color", 0) {
		t.Error("PointID() should be deterministic")
	}
	if a == vectorstore.PointID("personal_color", 1) || a == vectorstore.PointID("trend", 0) {
		t.Error("PointID() should differ across positions and sources")
	}
}
