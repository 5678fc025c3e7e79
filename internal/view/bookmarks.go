package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// BookmarkCache remembers the color chosen for each history entry. It is
// written to a JSON file on every change, so a bookmark survives even when the
// backend never stored it. An empty path keeps the cache in memory only.
type BookmarkCache struct {
	mu    sync.RWMutex
	path  string
	marks map[string]string
}

func LoadBookmarkCache(path string) (*BookmarkCache, error) {
	c := &BookmarkCache{path: path, marks: make(map[string]string)}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.marks); err != nil {
		return nil, fmt.Errorf("parse bookmarks %s: %w", path, err)
	}
	return c, nil
}

func (c *BookmarkCache) Get(entryID string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.marks[entryID]
}

// All returns a copy of the entry id to color map.
func (c *BookmarkCache) All() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.marks))
	for k, v := range c.marks {
		out[k] = v
	}
	return out
}

// Set records color for entryID and persists the cache. The latest color wins.
func (c *BookmarkCache) Set(entryID, color string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.marks[entryID] = color
	return c.save()
}

func (c *BookmarkCache) save() error {
	if c.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(c.marks, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bookmarks dir: %w", err)
		}
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return os.Rename(tmp, c.path)
}
