package icon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/singleflight"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/cache"
	httpClient "github.com/cloudposse/tokenicon/pkg/http"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/presentation"
	"github.com/cloudposse/tokenicon/pkg/retry"
	"github.com/cloudposse/tokenicon/pkg/schema"
)

// DefaultMaxBytes caps a downloaded image.
const DefaultMaxBytes int64 = 5 << 20

var supportedImageTypes = []string{"image/png", "image/jpeg", "image/gif"}

// Fetcher downloads and decodes remote images off the presentation context
// and posts results back onto it.
type Fetcher struct {
	client     httpClient.Client
	retry      *retry.Executor
	cache      *cache.FileCache
	maxBytes   int64
	dispatcher presentation.Dispatcher
	group      singleflight.Group
	inflight   sync.WaitGroup
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client httpClient.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithCache stores downloaded bytes in c. A nil cache disables caching.
func WithCache(c *cache.FileCache) FetcherOption {
	return func(f *Fetcher) {
		f.cache = c
	}
}

// WithRetry sets the retry policy.
func WithRetry(cfg schema.RetryConfig) FetcherOption {
	return func(f *Fetcher) {
		f.retry = retry.New(cfg)
	}
}

// WithMaxBytes caps the downloaded body size.
func WithMaxBytes(n int64) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// NewFetcher creates a Fetcher that delivers on dispatcher.
func NewFetcher(dispatcher presentation.Dispatcher, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:     httpClient.NewDefaultClient(),
		retry:      retry.New(retry.DefaultConfig()),
		maxBytes:   DefaultMaxBytes,
		dispatcher: dispatcher,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFetcherFromConfig wires a Fetcher from the fetch section of the configuration.
func NewFetcherFromConfig(cfg schema.Fetch, dispatcher presentation.Dispatcher) (*Fetcher, error) {
	opts := []FetcherOption{
		WithHTTPClient(httpClient.NewDefaultClient(
			httpClient.WithTimeout(cfg.Timeout),
			httpClient.WithUserAgent(cfg.UserAgent),
		)),
		WithRetry(cfg.Retry),
		WithMaxBytes(cfg.MaxBytes),
	}

	if !cfg.DisableCache {
		c, err := cache.NewFileCache("images",
			cache.WithBaseDir(cfg.CacheDir),
			cache.WithMaxAge(cfg.CacheTTL),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCache(c))
	}

	return NewFetcher(dispatcher, opts...), nil
}

// Fetch loads uri in the background and posts deliver(img) to the dispatcher on success.
// Failures are logged and nothing is delivered.
func (f *Fetcher) Fetch(ctx context.Context, uri string, size int, deliver func(image.Image)) {
	f.inflight.Add(1)
	go func() {
		defer f.inflight.Done()

		img, err := f.Load(ctx, uri, size)
		if err != nil {
			log.Warn("Failed to fetch icon", "uri", uri, "size", size, "error", err)
			return
		}
		f.dispatcher.Post(func() { deliver(img) })
	}()
}

// Wait blocks until all background fetches have finished.
func (f *Fetcher) Wait() {
	f.inflight.Wait()
}

// Load fetches and decodes uri and fits it to size. Concurrent loads of the
// same uri and size share one download.
func (f *Fetcher) Load(ctx context.Context, uri string, size int) (image.Image, error) {
	if size < 0 {
		return nil, errUtils.Build(errUtils.ErrInvalidImageSize).WithContext("size", size).Err()
	}

	v, err, _ := f.group.Do(uri+"#"+strconv.Itoa(size), func() (interface{}, error) {
		data, err := f.read(ctx, uri)
		if err != nil {
			return nil, err
		}
		img, err := decode(data)
		if err != nil {
			f.evict(uri)
			return nil, err
		}
		return Fit(img, size), nil
	})
	if err != nil {
		return nil, errors.Join(errUtils.ErrFetchFailed, err)
	}
	return v.(image.Image), nil
}

func (f *Fetcher) read(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid uri %q: %w", uri, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return f.download(ctx, uri)
	case "file":
		return readLocal(u.Path, f.maxBytes)
	case "":
		return readLocal(uri, f.maxBytes)
	default:
		return nil, fmt.Errorf("unsupported uri scheme %q", u.Scheme)
	}
}

func (f *Fetcher) download(ctx context.Context, uri string) ([]byte, error) {
	if f.cache != nil {
		data, ok, err := f.cache.Get(uri)
		switch {
		case err != nil:
			log.Debug("Ignoring icon cache read failure", "uri", uri, "error", err)
		case ok:
			log.Trace("Icon cache hit", "uri", uri)
			return data, nil
		}
	}

	var data []byte
	err := f.retry.ExecuteWithPredicate(ctx, func(ctx context.Context) error {
		body, err := httpClient.GetLimited(ctx, uri, f.client, f.maxBytes)
		if err != nil {
			log.Debug("Icon download attempt failed", "uri", uri, "error", err)
			return err
		}
		data = body
		return nil
	}, func(err error) bool {
		return ctx.Err() == nil && isRetryable(err)
	})
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		if err := f.cache.Set(uri, data); err != nil {
			log.Debug("Failed to cache icon", "uri", uri, "error", err)
		}
	}
	return data, nil
}

// evict drops uri from the download cache so undecodable bytes are fetched again next time.
func (f *Fetcher) evict(uri string) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Delete(uri); err != nil {
		log.Debug("Failed to evict icon from cache", "uri", uri, "error", err)
	}
}

func isRetryable(err error) bool {
	var statusErr *httpClient.StatusError
	if errors.As(err, &statusErr) && statusErr.Permanent() {
		return false
	}
	return !errors.Is(err, errUtils.ErrResponseTooLarge)
}

func readLocal(path string, maxBytes int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes", errUtils.ErrResponseTooLarge, path, info.Size())
	}
	return os.ReadFile(path)
}

func decode(data []byte) (image.Image, error) {
	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), supportedImageTypes...) {
		return nil, errUtils.Build(errUtils.ErrUnsupportedImage).
			WithContext("content_type", mtype.String()).
			Err()
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrImageDecode).WithCause(err).Err()
	}
	return img, nil
}
