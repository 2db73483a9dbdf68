package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/icon"
	"github.com/cloudposse/tokenicon/pkg/store"
	"github.com/cloudposse/tokenicon/pkg/token"
	"github.com/cloudposse/tokenicon/pkg/version"
)

func solidPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func readPNGBounds(t *testing.T, path string) image.Rectangle {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds()
}

func TestVersionCommand(t *testing.T) {
	newTestEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tokenicon "+version.Version)
}

func TestRootCommand_InvalidLogsLevel(t *testing.T) {
	newTestEnv(t)

	_, err := execute(t, "version", "--logs-level", "Verbose")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidConfigValue)
	assert.Equal(t, errUtils.ExitCodeConfig, errUtils.GetExitCode(err))
}

func TestRootCommand_MissingConfigPath(t *testing.T) {
	newTestEnv(t)

	_, err := execute(t, "version", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrLoadConfig)
}

type countingLoader struct {
	calls int
	err   error
}

func (l *countingLoader) Load(name string) (image.Image, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return icon.EmbeddedLoader{}.Load(name)
}

func TestRootCommand_ChecksBundledDefaultIcon(t *testing.T) {
	newTestEnv(t)
	loader := &countingLoader{}
	prev := bundledLoader
	bundledLoader = loader
	t.Cleanup(func() { bundledLoader = prev })

	_, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls)
}

func TestRootCommand_MissingBundledDefaultIconExits(t *testing.T) {
	newTestEnv(t)
	loader := &countingLoader{err: errUtils.Build(errUtils.ErrBundledResource).WithExitCode(errUtils.ExitCodeConfig).Err()}
	prevLoader, prevExit := bundledLoader, errUtils.OsExit
	var code int
	bundledLoader = loader
	errUtils.OsExit = func(c int) { code = c }
	t.Cleanup(func() {
		bundledLoader = prevLoader
		errUtils.OsExit = prevExit
	})

	_, _ = execute(t, "version")
	assert.Equal(t, errUtils.ExitCodeConfig, code)
}

func TestMatchCommand(t *testing.T) {
	newTestEnv(t)

	out, err := execute(t, "match", "GitHub Enterprise")
	require.NoError(t, err)
	assert.Contains(t, out, "github")

	_, err = execute(t, "match", "Zzyzx Credit Union")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrNoBrandMatch)
	assert.Equal(t, errUtils.ExitCodeNotFound, errUtils.GetExitCode(err))

	_, err = execute(t, "match")
	assert.ErrorIs(t, err, errUtils.ErrEmptyIssuer)

	out, err = execute(t, "match", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "gitlab")
	assert.Contains(t, out, "github")
}

func TestResolveCommand_Brand(t *testing.T) {
	wd := newTestEnv(t)
	outFile := filepath.Join(wd, "github.png")

	out, err := execute(t, "resolve", "--issuer", "GitHub", "--label", "alice", "--size", "64", "--out", outFile)
	require.NoError(t, err)

	assert.Contains(t, out, "source: brand")
	assert.Contains(t, out, "color key: github")
	assert.Contains(t, out, "#181717")
	assert.Contains(t, out, "bitmap: 124x124")

	b := readPNGBounds(t, outFile)
	assert.Equal(t, 124, b.Dx())
	assert.Equal(t, 124, b.Dy())
}

func TestResolveCommand_BrandColorSpelling(t *testing.T) {
	newTestEnv(t)

	out, err := execute(t, "resolve", "--issuer", "GitLab", "--label", "alice")
	require.NoError(t, err)

	assert.Contains(t, out, "color key: gitlab")
	assert.Contains(t, out, "#FC6D26")
	assert.NotContains(t, out, "#fc6d26")
}

func TestResolveCommand_NoSource(t *testing.T) {
	newTestEnv(t)

	out, err := execute(t, "resolve", "--issuer", "Zzyzx Credit Union")
	require.NoError(t, err)
	assert.Contains(t, out, "source: none")
	assert.Contains(t, out, "#8E8E93")
	assert.Contains(t, out, "placeholder")
}

func TestResolveCommand_NoBitmapToWrite(t *testing.T) {
	wd := newTestEnv(t)

	_, err := execute(t, "resolve", "--issuer", "Zzyzx", "--out", filepath.Join(wd, "none.png"))
	assert.ErrorIs(t, err, errUtils.ErrImageEncode)
}

func TestResolveCommand_ExplicitImage(t *testing.T) {
	newTestEnv(t)
	body := solidPNG(t, 32, 32)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	out, err := execute(t, "resolve", "--issuer", "GitHub", "--image", server.URL+"/logo.png", "--size", "64")
	require.NoError(t, err)

	// The explicit image wins over the brand and uses the neutral background.
	assert.Contains(t, out, "source: explicit")
	assert.NotContains(t, out, "color key:")
	assert.Contains(t, out, "bitmap: 124x124")
}

func TestResolveCommand_ExplicitImageUnavailable(t *testing.T) {
	newTestEnv(t)
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	out, err := execute(t, "resolve", "--issuer", "GitHub", "--image", server.URL+"/missing.png")
	require.NoError(t, err)
	assert.Contains(t, out, "source: explicit")
	assert.Contains(t, out, "placeholder")
}

func TestIconCommands(t *testing.T) {
	wd := newTestEnv(t)
	src := filepath.Join(wd, "acme.png")
	require.NoError(t, os.WriteFile(src, solidPNG(t, 256, 128), 0o600))

	_, err := execute(t, "icon", "set", "Acme Corp", src, "--name", "acme")
	require.NoError(t, err)

	exported := filepath.Join(wd, "exported.png")
	out, err := execute(t, "icon", "get", "Acme Corp", "--out", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "name: acme")
	assert.Contains(t, out, "bitmap: 256x128")
	assert.Equal(t, 256, readPNGBounds(t, exported).Dx())

	out, err = execute(t, "resolve", "--issuer", "Acme Corp", "--size", "64")
	require.NoError(t, err)
	assert.Contains(t, out, "source: custom")
	assert.Contains(t, out, "color key: acme")
	assert.Contains(t, out, "bitmap: 124x92")

	_, err = execute(t, "icon", "get", "acme corp")
	assert.ErrorIs(t, err, errUtils.ErrCustomIconNotFound)
	assert.Equal(t, errUtils.ExitCodeNotFound, errUtils.GetExitCode(err))
}

func TestIconSet_UnsupportedImage(t *testing.T) {
	wd := newTestEnv(t)
	src := filepath.Join(wd, "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o600))

	_, err := execute(t, "icon", "set", "Acme", src)
	assert.ErrorIs(t, err, errUtils.ErrUnsupportedImage)
}

func tokensFile(t *testing.T) *token.FileStore {
	t.Helper()
	s, err := token.NewFileStore()
	require.NoError(t, err)
	return s
}

func TestTokenCommands_Lifecycle(t *testing.T) {
	newTestEnv(t)

	out, err := execute(t, "token", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tokens stored")

	_, err = execute(t, "token", "add", "--id", "gh", "--issuer", "GitHub", "--label", "alice")
	require.NoError(t, err)

	_, err = execute(t, "token", "add", "--id", "gh", "--issuer", "GitHub", "--label", "bob")
	assert.ErrorIs(t, err, errUtils.ErrTokenExists)

	out, err = execute(t, "token", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "brand")
	assert.Contains(t, out, "#181717")

	out, err = execute(t, "token", "show", "gh")
	require.NoError(t, err)
	assert.Contains(t, out, "issuer: GitHub")
	assert.Contains(t, out, "label: alice")
	assert.Contains(t, out, "source: brand")

	_, err = execute(t, "token", "edit", "gh", "--label", "alice@example.com")
	require.NoError(t, err)

	tok, err := tokensFile(t).Get("gh")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", tok.Label)
	assert.Equal(t, "GitHub", tok.Issuer)

	_, err = execute(t, "token", "rm", "gh", "--yes")
	require.NoError(t, err)

	_, err = tokensFile(t).Get("gh")
	assert.ErrorIs(t, err, errUtils.ErrTokenNotFound)
}

func TestTokenEdit_LockingUnsupported(t *testing.T) {
	newTestEnv(t)
	require.NoError(t, tokensFile(t).Add(&token.Token{ID: "t1", Issuer: "GitLab", Label: "dev"}))

	out, err := execute(t, "token", "edit", "t1", "--lock")
	assert.ErrorIs(t, err, errUtils.ErrLockingUnsupported)
	assert.Contains(t, out, "locking unavailable")

	tok, err := tokensFile(t).Get("t1")
	require.NoError(t, err)
	assert.False(t, tok.Locked)
}

func TestTokenEdit_Lock(t *testing.T) {
	newTestEnv(t)
	t.Setenv("TOKENICON_TOKENS_LOCKING", "true")
	require.NoError(t, tokensFile(t).Add(&token.Token{ID: "t1", Issuer: "GitLab", Label: "dev"}))

	out, err := execute(t, "token", "edit", "t1", "--lock")
	require.NoError(t, err)
	assert.Contains(t, out, "lock: locked")

	tok, err := tokensFile(t).Get("t1")
	require.NoError(t, err)
	assert.True(t, tok.Locked)

	_, err = execute(t, "token", "edit", "t1", "--lock", "--unlock")
	assert.ErrorIs(t, err, errUtils.ErrInvalidConfigValue)
}

func TestTokenRm_RequiresTerminalWithoutYes(t *testing.T) {
	newTestEnv(t)
	prev := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = prev })
	require.NoError(t, tokensFile(t).Add(&token.Token{ID: "t1", Issuer: "GitLab", Label: "dev"}))

	_, err := execute(t, "token", "rm", "t1")
	assert.ErrorIs(t, err, errUtils.ErrConfirmationFailure)
	assert.ErrorIs(t, err, errUtils.ErrNotInteractive)

	_, err = tokensFile(t).Get("t1")
	assert.NoError(t, err)
}

func TestTokenShow_NotFound(t *testing.T) {
	newTestEnv(t)

	_, err := execute(t, "token", "show", "missing")
	assert.ErrorIs(t, err, errUtils.ErrTokenNotFound)
	assert.Equal(t, errUtils.ExitCodeNotFound, errUtils.GetExitCode(err))
}

func TestStaticConfirmer(t *testing.T) {
	ok, err := staticConfirmer(true).Confirm(t.Context(), "delete?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = staticConfirmer(false).Confirm(t.Context(), "delete?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTerminalPresenter(t *testing.T) {
	var buf bytes.Buffer
	p := newTerminalPresenter(&buf)

	p.ShowText("issuer", "GitHub")
	p.ShowLockControl(true, true)
	p.NavigateAway()

	assert.Contains(t, buf.String(), "issuer: GitHub")
	assert.Contains(t, buf.String(), "lock: locked")
	assert.Contains(t, buf.String(), "Token deleted.")
	assert.True(t, p.navigated)
}

func TestIconSize(t *testing.T) {
	cfg := cliConfig
	cfg.Icons.Size = 96

	assert.Equal(t, 48, iconSize(cfg, 48))
	assert.Equal(t, 96, iconSize(cfg, 0))

	cfg.Icons.Size = 0
	assert.Equal(t, 128, iconSize(cfg, -1))
}

type closeCountingRedis struct {
	store.RedisClient
	closed int
}

func (c *closeCountingRedis) Close() error {
	c.closed++
	return nil
}

func TestCloseStore_ReleasesRedisClient(t *testing.T) {
	client := &closeCountingRedis{}
	closeStore(store.NewRedisStoreWithClient(client, store.RedisStoreOptions{}))
	assert.Equal(t, 1, client.closed)

	// Stores without resources are left alone.
	mem, err := store.NewInMemoryStore(nil)
	require.NoError(t, err)
	closeStore(mem)
}
