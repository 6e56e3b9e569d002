package indexer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"personalcolor-ai/internal/indexer"
	"personalcolor-ai/internal/rag/mocks"
)

// knowledgeDir creates a directory tree of knowledge documents.
func knowledgeDir(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
	return root
}

func TestScanDocuments(t *testing.T) {
	root := knowledgeDir(t, map[string]string{
		"b_trend.md":           "b",
		"a_basics.txt":         "a",
		"seasons/autumn.TXT":   "c",
		"notes.json":           "{}",
		".drafts/wip.md":       "hidden",
		"seasons/.scratch.txt": "hidden",
	})

	files, err := indexer.ScanDocuments(root)
	if err != nil {
		t.Fatalf("ScanDocuments() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a_basics.txt"),
		filepath.Join(root, "b_trend.md"),
		filepath.Join(root, "seasons", "autumn.TXT"),
	}
	if len(files) != len(want) {
		t.Fatalf("ScanDocuments() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestReadSource(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		want    string
		wantErr bool
	}{
		{
			name:  "single file",
			setup: func(t *testing.T) string { return writeDoc(t, "  봄 웜톤 \n") },
			want:  "  봄 웜톤 \n",
		},
		{
			name: "directory joined in path order",
			setup: func(t *testing.T) string {
				return knowledgeDir(t, map[string]string{
					"2.md":  "second\n",
					"1.txt": "\nfirst",
				})
			},
			want: "first\n\nsecond",
		},
		{
			name:    "missing path",
			setup:   func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
			wantErr: true,
		},
		{
			name:    "directory without documents",
			setup:   func(t *testing.T) string { return knowledgeDir(t, map[string]string{"data.csv": "x"}) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := indexer.ReadSource(tt.setup(t))
			if tt.wantErr {
				if !errors.Is(err, indexer.ErrKnowledgeSourceUnavailable) {
					t.Fatalf("ReadSource() error = %v, want ErrKnowledgeSourceUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadSource() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadSource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_Build_Directory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := knowledgeDir(t, map[string]string{
		"a.txt": "abcd",
		"b.md":  "wxyz",
	})

	embedder := mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Len(3)).
		Return([][]float32{{1}, {2}, {3}}, nil)

	ix, err := newBuilder(t, embedder).Build(context.Background(), indexer.Source{Name: "dir", Path: root})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ix.Len() != 3 {
		t.Errorf("Build() produced %d chunks, want 3", ix.Len())
	}
}
