package fswalk

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustWrite(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverSources(t *testing.T) {
	root := t.TempDir()

	mustWrite(t, filepath.Join(root, "a.expr"), "a")
	mustWrite(t, filepath.Join(root, "nested", "b.expr"), "b")
	mustWrite(t, filepath.Join(root, "nested", "c.txt"), "c")

	got, err := DiscoverSources(root, "**/*.expr")
	require.NoError(t, err)

	var rel []string
	for _, f := range got {
		rel = append(rel, filepath.ToSlash(f.RelPath))
	}

	want := []string{"a.expr", "nested/b.expr"}
	require.True(t, slices.Equal(rel, want))
}

func TestDiscoverSourcesDefaultsGlob(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "a.expr"), "a")
	mustWrite(t, filepath.Join(root, "b.txt"), "b")

	got, err := DiscoverSources(root, "  ")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestDiscoverSourcesRejectsBadPattern(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "a.expr"), "a")

	_, err := DiscoverSources(root, "[")
	require.Error(t, err)
}
