package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores rendered artifacts as JSON files under a root directory.
// Keys are hashed into a two-level layout (first two hex chars pick the
// subdirectory) so a long-lived cache never piles thousands of files into
// one directory.
type FileCache struct {
	dir string
}

// fileEntry is the on-disk record: the artifact bytes plus an optional
// expiry deadline. A zero Deadline means the entry never expires.
type fileEntry struct {
	Payload  []byte    `json:"payload"`
	Deadline time.Time `json:"deadline,omitzero"`
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves the value for key. Unreadable or expired entries are
// removed and reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !e.Deadline.IsZero() && time.Now().After(e.Deadline) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Payload, true, nil
}

// Set stores data under key. A ttl of zero means the entry never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Payload: data}
	if ttl > 0 {
		e.Deadline = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes the entry for key. Missing entries are not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if err := os.Remove(c.entryPath(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op; every operation already leaves the files consistent.
func (c *FileCache) Close() error { return nil }

// Clear removes every entry under the cache directory and reports how many
// entries were removed.
func (c *FileCache) Clear() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		sub := filepath.Join(c.dir, e.Name())
		if e.IsDir() {
			if files, err := os.ReadDir(sub); err == nil {
				removed += len(files)
			}
		} else {
			removed++
		}
		if err := os.RemoveAll(sub); err != nil {
			return removed, err
		}
	}
	return removed, nil
}

// Dir returns the cache's root directory.
func (c *FileCache) Dir() string { return c.dir }

func (c *FileCache) entryPath(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
