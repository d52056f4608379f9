package fswalk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SourcePath stores absolute and root-relative paths for one input file.
type SourcePath struct {
	AbsPath string
	RelPath string
}

// normalizePattern returns a usable glob and defaults to every file.
func normalizePattern(pattern string) string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return "**/*"
	}
	return filepath.ToSlash(pattern)
}

// DiscoverSources finds files under root matching the glob pattern,
// sorted by relative path so scan order is stable.
func DiscoverSources(root string, pattern string) ([]SourcePath, error) {
	root = filepath.Clean(root)
	matcher := normalizePattern(pattern)

	var files []SourcePath
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("compute relative path for %q: %w", path, err)
		}

		matched, err := doublestar.PathMatch(matcher, filepath.ToSlash(relPath))
		if err != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if !matched {
			return nil
		}

		files = append(files, SourcePath{
			AbsPath: path,
			RelPath: relPath,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})

	return files, nil
}
