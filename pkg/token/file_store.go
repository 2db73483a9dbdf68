package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/samber/lo"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/cache"
	"github.com/cloudposse/tokenicon/pkg/filesystem"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/xdg"
)

const (
	defaultFileName = "tokens.json"
	dataDirPerm     = 0o700
	tokenFilePerm   = 0o600
)

type fileContents struct {
	Tokens []*Token `json:"tokens"`
}

// FileStore keeps tokens in a single JSON document.
// Every operation reads the file, so writes by other processes are picked up.
type FileStore struct {
	path    string
	locking bool
	fs      filesystem.FileSystem
	lock    cache.FileLock
	mu      sync.Mutex
}

var _ Store = (*FileStore)(nil)

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithPath sets the tokens file location.
func WithPath(path string) FileStoreOption {
	return func(s *FileStore) {
		if path != "" {
			s.path = path
		}
	}
}

// WithLocking enables lock support.
func WithLocking(enabled bool) FileStoreOption {
	return func(s *FileStore) {
		s.locking = enabled
	}
}

// WithFileSystem sets a custom filesystem implementation.
func WithFileSystem(fsys filesystem.FileSystem) FileStoreOption {
	return func(s *FileStore) {
		s.fs = fsys
	}
}

// NewFileStore creates a FileStore. Without WithPath the file lives in the XDG data dir.
func NewFileStore(opts ...FileStoreOption) (*FileStore, error) {
	s := &FileStore{fs: filesystem.NewOSFileSystem()}
	for _, opt := range opts {
		opt(s)
	}

	if s.path == "" {
		dir, err := xdg.GetXDGDataDir("", dataDirPerm)
		if err != nil {
			return nil, errUtils.Build(errUtils.ErrTokenStoreRead).WithCause(err).Err()
		}
		s.path = filepath.Join(dir, defaultFileName)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dataDirPerm); err != nil {
		return nil, errUtils.Build(errUtils.ErrTokenStoreWrite).
			WithCause(err).
			WithContext("path", s.path).
			Err()
	}

	s.lock = cache.NewFileLock(s.path)
	return s, nil
}

// Path returns the tokens file location.
func (s *FileStore) Path() string {
	return s.path
}

// LockingSupported implements Store.
func (s *FileStore) LockingSupported() bool {
	return s.locking
}

// List returns all tokens ordered by ID.
func (s *FileStore) List() ([]*Token, error) {
	var tokens []*Token
	err := s.read(func(c *fileContents) {
		tokens = lo.Map(c.Tokens, func(t *Token, _ int) *Token { return t.Clone() })
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].ID < tokens[j].ID })
	return tokens, nil
}

// Get returns the token with the given ID.
func (s *FileStore) Get(id string) (*Token, error) {
	var found *Token
	err := s.read(func(c *fileContents) {
		if t, ok := lo.Find(c.Tokens, func(t *Token) bool { return t.ID == id }); ok {
			found = t.Clone()
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errUtils.Build(errUtils.ErrTokenNotFound).
			WithContext("id", id).
			WithExitCode(errUtils.ExitCodeNotFound).
			Err()
	}
	return found, nil
}

// Add inserts a new token. The ID must be set and unused.
func (s *FileStore) Add(tok *Token) error {
	if tok == nil || tok.ID == "" {
		return errUtils.ErrTokenIDRequired
	}
	return s.update(func(c *fileContents) error {
		if lo.ContainsBy(c.Tokens, func(t *Token) bool { return t.ID == tok.ID }) {
			return errUtils.Build(errUtils.ErrTokenExists).WithContext("id", tok.ID).Err()
		}
		c.Tokens = append(c.Tokens, tok.Clone())
		return nil
	})
}

// Save implements Store.
func (s *FileStore) Save(tok *Token) error {
	if tok == nil || tok.ID == "" {
		return errUtils.ErrTokenIDRequired
	}
	return s.update(func(c *fileContents) error {
		for i, t := range c.Tokens {
			if t.ID == tok.ID {
				c.Tokens[i] = tok.Clone()
				return nil
			}
		}
		c.Tokens = append(c.Tokens, tok.Clone())
		return nil
	})
}

// Erase implements Store.
func (s *FileStore) Erase(tok *Token) error {
	if tok == nil || tok.ID == "" {
		return errUtils.ErrTokenIDRequired
	}
	return s.update(func(c *fileContents) error {
		before := len(c.Tokens)
		c.Tokens = lo.Reject(c.Tokens, func(t *Token, _ int) bool { return t.ID == tok.ID })
		if len(c.Tokens) == before {
			return errUtils.Build(errUtils.ErrTokenNotFound).
				WithContext("id", tok.ID).
				WithExitCode(errUtils.ExitCodeNotFound).
				Err()
		}
		return nil
	})
}

// SetLocked implements Store. tok.Locked is updated to the persisted value.
func (s *FileStore) SetLocked(tok *Token, locked bool) error {
	if !s.locking {
		return errUtils.ErrLockingUnsupported
	}
	if tok == nil || tok.ID == "" {
		return errUtils.ErrTokenIDRequired
	}

	var kept bool
	err := s.update(func(c *fileContents) error {
		for _, t := range c.Tokens {
			if t.ID == tok.ID {
				t.Locked = locked
				kept = t.Locked
				return nil
			}
		}
		return errUtils.Build(errUtils.ErrTokenNotFound).WithContext("id", tok.ID).Err()
	})
	if err != nil {
		return err
	}

	tok.Locked = kept
	return nil
}

func (s *FileStore) read(fn func(*fileContents)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lock.WithRLock(func() error {
		c, err := s.load()
		if err != nil {
			return err
		}
		fn(c)
		return nil
	})
}

func (s *FileStore) update(fn func(*fileContents) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lock.WithLock(func() error {
		c, err := s.load()
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		return s.store(c)
	})
}

func (s *FileStore) load() (*fileContents, error) {
	data, err := s.fs.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &fileContents{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrTokenStoreRead, err)
	}

	var c fileContents
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errUtils.Build(errUtils.ErrTokenStoreRead).
			WithCause(err).
			WithContext("path", s.path).
			WithHint("The tokens file is not valid JSON; restore it from a backup or remove it").
			Err()
	}
	return &c, nil
}

func (s *FileStore) store(c *fileContents) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrTokenStoreWrite, err)
	}
	if err := s.fs.WriteFileAtomic(s.path, data, tokenFilePerm); err != nil {
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrTokenStoreWrite, err)
	}
	log.Trace("Wrote tokens file", "path", s.path, "count", len(c.Tokens))
	return nil
}
