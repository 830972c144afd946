package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/graphlang/codeindex/internal/filter"
)

// scanFiles walks root, applying filter.ShouldScanDirectory to prune
// directories and filter.ShouldParseFile to admit files, and returns every
// admitted path. Errors walking an individual entry are skipped rather than
// aborting the whole scan — a single unreadable directory should not fail
// an otherwise-good run.
func scanFiles(root string, opts filter.Options) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if !filter.ShouldScanDirectory(d.Name(), path) {
				return filepath.SkipDir
			}
			return nil
		}
		if filter.ShouldParseFile(path, opts) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
