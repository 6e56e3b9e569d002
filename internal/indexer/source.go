package indexer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// documentExts are the file extensions read from a knowledge directory.
var documentExts = map[string]bool{".txt": true, ".md": true}

// ReadSource returns the text of a knowledge source. A file is read as-is. A
// directory is walked and its .txt and .md documents are joined in path order,
// separated by a blank line; hidden files and directories are skipped.
// Any failure wraps ErrKnowledgeSourceUnavailable.
func ReadSource(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrKnowledgeSourceUnavailable, path, err)
	}

	if !info.IsDir() {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrKnowledgeSourceUnavailable, path, err)
		}
		return string(content), nil
	}

	files, err := ScanDocuments(path)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w: %s: no documents in directory", ErrKnowledgeSourceUnavailable, path)
	}

	parts := make([]string, 0, len(files))
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrKnowledgeSourceUnavailable, f, err)
		}
		parts = append(parts, strings.TrimSpace(string(content)))
	}
	return strings.Join(parts, "\n\n"), nil
}

// ScanDocuments lists the knowledge documents under root in lexical path order.
func ScanDocuments(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !documentExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKnowledgeSourceUnavailable, err)
	}

	return files, nil
}
