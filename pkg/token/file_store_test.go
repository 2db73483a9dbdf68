package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

func newTestStore(t *testing.T, opts ...FileStoreOption) *FileStore {
	t.Helper()
	opts = append([]FileStoreOption{WithPath(filepath.Join(t.TempDir(), "data", "tokens.json"))}, opts...)
	s, err := NewFileStore(opts...)
	require.NoError(t, err)
	return s
}

func TestFileStore_EmptyList(t *testing.T) {
	s := newTestStore(t)

	tokens, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestFileStore_AddGetList(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(&Token{ID: "b", Issuer: "Slack", Label: "work"}))
	require.NoError(t, s.Add(&Token{ID: "a", Issuer: "GitHub", Label: "me@example.com"}))

	tokens, err := s.List()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "a", tokens[0].ID)
	assert.Equal(t, "b", tokens[1].ID)

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "GitHub", got.Issuer)

	err = s.Add(&Token{ID: "a"})
	assert.ErrorIs(t, err, errUtils.ErrTokenExists)
}

func TestFileStore_RequiresID(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.Add(&Token{Issuer: "x"}), errUtils.ErrTokenIDRequired)
	assert.ErrorIs(t, s.Save(nil), errUtils.ErrTokenIDRequired)
	assert.ErrorIs(t, s.Erase(&Token{}), errUtils.ErrTokenIDRequired)
}

func TestFileStore_SaveUpserts(t *testing.T) {
	s := newTestStore(t)

	tok := &Token{ID: "gh", Issuer: "GitHub"}
	require.NoError(t, s.Save(tok))

	tok.Label = "renamed"
	require.NoError(t, s.Save(tok))

	tokens, err := s.List()
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "renamed", tokens[0].Label)
}

func TestFileStore_StoresCopies(t *testing.T) {
	s := newTestStore(t)

	tok := &Token{ID: "gh", Issuer: "GitHub"}
	require.NoError(t, s.Save(tok))
	tok.Issuer = "mutated"

	got, err := s.Get("gh")
	require.NoError(t, err)
	assert.Equal(t, "GitHub", got.Issuer)
}

func TestFileStore_Erase(t *testing.T) {
	s := newTestStore(t)
	tok := &Token{ID: "gh", Issuer: "GitHub"}
	require.NoError(t, s.Add(tok))

	require.NoError(t, s.Erase(tok))

	_, err := s.Get("gh")
	assert.ErrorIs(t, err, errUtils.ErrTokenNotFound)
	assert.Equal(t, errUtils.ExitCodeNotFound, errUtils.GetExitCode(err))

	assert.ErrorIs(t, s.Erase(tok), errUtils.ErrTokenNotFound)
}

func TestFileStore_SetLocked(t *testing.T) {
	s := newTestStore(t, WithLocking(true))
	tok := &Token{ID: "gh", Issuer: "GitHub"}
	require.NoError(t, s.Add(tok))

	require.True(t, s.LockingSupported())
	require.NoError(t, s.SetLocked(tok, true))
	assert.True(t, tok.Locked)

	got, err := s.Get("gh")
	require.NoError(t, err)
	assert.True(t, got.Locked)
}

func TestFileStore_SetLockedUnsupported(t *testing.T) {
	s := newTestStore(t)
	tok := &Token{ID: "gh"}
	require.NoError(t, s.Add(tok))

	assert.False(t, s.LockingSupported())
	assert.ErrorIs(t, s.SetLocked(tok, true), errUtils.ErrLockingUnsupported)
	assert.False(t, tok.Locked)
}

func TestFileStore_CorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o600))

	_, err := s.List()
	assert.ErrorIs(t, err, errUtils.ErrTokenStoreRead)
}

func TestFileStore_SharedFileAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	a, err := NewFileStore(WithPath(path))
	require.NoError(t, err)
	b, err := NewFileStore(WithPath(path))
	require.NoError(t, err)

	require.NoError(t, a.Add(&Token{ID: "x", Issuer: "Okta"}))

	got, err := b.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "Okta", got.Issuer)
}

func TestNewFileStore_DefaultsToXDGDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOKENICON_XDG_DATA_HOME", dir)

	s, err := NewFileStore()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tokenicon", defaultFileName), s.Path())
}
