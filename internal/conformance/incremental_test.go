package conformance

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementalCacheNoCacheReturnsAllFiles(t *testing.T) {
	dir := t.TempDir()
	cache := &IncrementalCache{Path: filepath.Join(dir, "missing.json")}

	files := []string{"a.json", "b.json"}
	assert.Equal(t, files, cache.FilterChanged(files))
}

func TestIncrementalCacheFiltersUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, writeFile(a, `[]`))
	require.NoError(t, writeFile(b, `[]`))

	cache := &IncrementalCache{Path: filepath.Join(dir, "cache.json")}
	require.NoError(t, cache.Save([]string{a, b}))

	// Touch only b with a later mtime.
	later := time.Now().Add(time.Hour)
	require.NoError(t, touch(b, later))

	changed := cache.FilterChanged([]string{a, b})
	assert.Equal(t, []string{b}, changed)
}

func TestIncrementalCacheEmptyCandidateSetReturnsFullList(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	require.NoError(t, writeFile(a, `[]`))

	cache := &IncrementalCache{Path: filepath.Join(dir, "cache.json")}
	require.NoError(t, cache.Save([]string{a}))

	files := []string{a}
	assert.Equal(t, files, cache.FilterChanged(files))
}

func touch(path string, t time.Time) error {
	return chtimes(path, t)
}
