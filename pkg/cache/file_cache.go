package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/filesystem"
	"github.com/cloudposse/tokenicon/pkg/xdg"
)

const (
	// DefaultCacheDirPerm is the default permission for cache directories.
	DefaultCacheDirPerm = 0o755
	// DefaultFilePerm is the default permission for cache files.
	DefaultFilePerm = 0o644
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// FileCache keeps downloaded icon bytes on disk, keyed by source URI.
// Entries older than the max age read as misses. Readers and writers in
// other processes are serialized through a lock file.
type FileCache struct {
	baseDir string
	maxAge  time.Duration
	lock    FileLock
	fs      filesystem.FileSystem
	now     func() time.Time
}

// FileCacheOption configures a FileCache.
type FileCacheOption func(*FileCache)

// WithBaseDir stores entries in dir instead of the XDG cache directory.
func WithBaseDir(dir string) FileCacheOption {
	return func(c *FileCache) {
		if dir != "" {
			c.baseDir = dir
		}
	}
}

// WithMaxAge expires entries older than d. Zero keeps entries forever.
func WithMaxAge(d time.Duration) FileCacheOption {
	return func(c *FileCache) {
		if d > 0 {
			c.maxAge = d
		}
	}
}

// WithFileSystem sets a custom filesystem implementation.
func WithFileSystem(fsys filesystem.FileSystem) FileCacheOption {
	return func(c *FileCache) {
		c.fs = fsys
	}
}

// NewFileCache creates a cache under the XDG cache subdirectory subpath,
// e.g. "images" resolves to ~/.cache/tokenicon/images.
func NewFileCache(subpath string, opts ...FileCacheOption) (*FileCache, error) {
	c := &FileCache{
		fs:  filesystem.NewOSFileSystem(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseDir == "" {
		dir, err := xdg.GetXDGCacheDir(subpath, DefaultCacheDirPerm)
		if err != nil {
			return nil, errUtils.Build(errUtils.ErrCacheDirectoryCreation).
				WithCause(err).
				WithContext("subpath", subpath).
				Err()
		}
		c.baseDir = dir
	}

	if err := c.fs.MkdirAll(c.baseDir, DefaultCacheDirPerm); err != nil {
		return nil, errUtils.Build(errUtils.ErrCacheDirectoryCreation).
			WithCause(err).
			WithContext("path", c.baseDir).
			Err()
	}

	c.lock = NewFileLock(filepath.Join(c.baseDir, "entries"))
	return c, nil
}

// entryPath maps uri to a file name: a hash of the uri plus its image extension, if any.
func (c *FileCache) entryPath(uri string) string {
	sum := sha256.Sum256([]byte(uri))
	return filepath.Join(c.baseDir, hex.EncodeToString(sum[:8])+imageExtension(uri))
}

// imageExtension returns the image extension of the uri's path, or "".
func imageExtension(uri string) string {
	p := uri
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		p = u.Path
	}
	ext := path.Ext(p)
	for _, known := range imageExtensions {
		if strings.EqualFold(ext, known) {
			return ext
		}
	}
	return ""
}

// Get returns the cached bytes for uri. A missing or expired entry is (nil, false, nil).
func (c *FileCache) Get(uri string) ([]byte, bool, error) {
	p := c.entryPath(uri)

	var data []byte
	err := c.lock.WithRLock(func() error {
		info, err := c.fs.Stat(p)
		if err != nil {
			return err
		}
		if c.expired(info.ModTime()) {
			return fs.ErrNotExist
		}
		data, err = c.fs.ReadFile(p)
		return err
	})
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, errUtils.Build(errUtils.ErrCacheRead).
			WithCause(err).
			WithContext("uri", uri).
			Err()
	}
	return data, true, nil
}

func (c *FileCache) expired(modified time.Time) bool {
	return c.maxAge > 0 && c.now().Sub(modified) > c.maxAge
}

// Set stores data for uri, replacing any previous entry atomically.
func (c *FileCache) Set(uri string, data []byte) error {
	p := c.entryPath(uri)
	return c.lock.WithLock(func() error {
		if err := c.fs.WriteFileAtomic(p, data, DefaultFilePerm); err != nil {
			return errUtils.Build(errUtils.ErrCacheWrite).
				WithCause(err).
				WithContext("uri", uri).
				Err()
		}
		return nil
	})
}

// Delete removes the entry for uri. A missing entry is not an error.
func (c *FileCache) Delete(uri string) error {
	p := c.entryPath(uri)
	return c.lock.WithLock(func() error {
		if err := c.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errUtils.Build(errUtils.ErrCacheWrite).
				WithCause(err).
				WithContext("uri", uri).
				Err()
		}
		return nil
	})
}

// BaseDir returns the directory entries are stored in.
func (c *FileCache) BaseDir() string {
	return c.baseDir
}
