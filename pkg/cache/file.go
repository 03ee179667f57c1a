package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores artifacts as plain files under a directory, so a
// cached SVG on disk is directly inspectable. An optional sidecar file
// carries the expiry time for entries stored with a ttl.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	if expired, err := c.expired(path); err != nil || expired {
		if expired {
			_ = os.Remove(path)
			_ = os.Remove(path + ".expires")
		}
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	if ttl > 0 {
		stamp := time.Now().Add(ttl).UTC().Format(time.RFC3339Nano)
		return os.WriteFile(path+".expires", []byte(stamp), 0o644)
	}
	if err := os.Remove(path + ".expires"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	path := c.path(key)
	_ = os.Remove(path + ".expires")
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// expired checks the sidecar expiry file, if present. An unreadable stamp
// counts as expired.
func (c *FileCache) expired(path string) (bool, error) {
	data, err := os.ReadFile(path + ".expires")
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	stamp, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		return true, nil
	}
	return time.Now().After(stamp), nil
}

// path converts a cache key to a file path.
// Uses a hash-based directory structure to avoid too many files in one dir.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:])
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
