package conformance

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const defaultCachePath = ".prism/cache/incremental.json"

// IncrementalCache persists a path→mtime map used to restrict a run to
// files that changed since the last save, per §4.6.
type IncrementalCache struct {
	Path string
}

// NewIncrementalCache returns a cache rooted at the default location
// relative to the current working directory.
func NewIncrementalCache() *IncrementalCache {
	return &IncrementalCache{Path: defaultCachePath}
}

// load reads the cache file. Any failure — missing file, unreadable,
// invalid JSON, or a non-object root — is treated as "no cache" rather
// than an error.
func (c *IncrementalCache) load() (map[string]int64, bool) {
	content, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, false
	}
	var m map[string]int64
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, false
	}
	return m, true
}

// FilterChanged returns the subset of files whose mtime differs from the
// cached mtime, or that are absent from the cache. When there is no usable
// cache, or when the computed candidate set is empty, it returns files
// unchanged — an empty candidate set is treated as a no-op rather than an
// empty run, per §4.6's explicit guard against "empty run" pathologies.
func (c *IncrementalCache) FilterChanged(files []string) []string {
	cache, ok := c.load()
	if !ok {
		return files
	}

	var candidates []string
	for _, f := range files {
		mtime, err := fileMTime(f)
		if err != nil {
			candidates = append(candidates, f)
			continue
		}
		cached, known := cache[f]
		if !known || cached != mtime {
			candidates = append(candidates, f)
		}
	}

	if len(candidates) == 0 {
		return files
	}
	return candidates
}

// Save writes the current mtime of each file with a readable mtime to the
// cache, creating the cache directory if needed and replacing the file
// atomically where the filesystem allows a rename.
func (c *IncrementalCache) Save(files []string) error {
	m := make(map[string]int64, len(files))
	for _, f := range files {
		mtime, err := fileMTime(f)
		if err != nil {
			continue
		}
		m[f] = mtime
	}

	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return err
	}

	content, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	tmp := c.Path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.Path)
}

// fileMTime returns a file's modification time as integer Unix seconds,
// matching the wire format §3/§6 specify for the incremental cache
// ("object of path → integer").
func fileMTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().Unix(), nil
}
