//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=client.go -destination=mock_client_test.go -package=http

package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

// DefaultTimeout bounds a single request when no WithTimeout option is given.
const DefaultTimeout = 30 * time.Second

// Client defines the interface for making HTTP requests.
type Client interface {
	// Do performs an HTTP request and returns the response.
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption is a functional option for configuring the DefaultClient.
type ClientOption func(*DefaultClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *DefaultClient) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// WithTransport sets a custom HTTP transport.
func WithTransport(transport http.RoundTripper) ClientOption {
	return func(c *DefaultClient) {
		c.client.Transport = transport
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *DefaultClient) {
		if userAgent == "" {
			return
		}
		c.client.Transport = &UserAgentTransport{
			Base:      c.client.Transport,
			UserAgent: userAgent,
		}
	}
}

// DefaultClient is the default HTTP client implementation.
type DefaultClient struct {
	client *http.Client
}

// NewDefaultClient creates a new DefaultClient with optional configuration.
func NewDefaultClient(opts ...ClientOption) *DefaultClient {
	client := &DefaultClient{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do implements Client.Do.
func (c *DefaultClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// UserAgentTransport wraps a RoundTripper and sets the User-Agent header.
type UserAgentTransport struct {
	Base      http.RoundTripper
	UserAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.UserAgent)

	resp, err := base.RoundTrip(clone)
	if err != nil {
		return nil, fmt.Errorf("user agent transport roundtrip: %w", err)
	}
	return resp, nil
}

// StatusError reports a non-200 response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", errUtils.ErrHTTPStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return errUtils.ErrHTTPStatus
}

// Permanent reports whether retrying the request cannot help (4xx other than 408 and 429).
func (e *StatusError) Permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 &&
		e.StatusCode != http.StatusRequestTimeout &&
		e.StatusCode != http.StatusTooManyRequests
}

// Get performs an HTTP GET request with context using the provided client.
func Get(ctx context.Context, url string, client Client) ([]byte, error) {
	return GetLimited(ctx, url, client, 0)
}

// GetLimited performs an HTTP GET and fails when the body exceeds maxBytes.
// A maxBytes of zero or less disables the limit.
func GetLimited(ctx context.Context, url string, client Client, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", errors.Join(errUtils.ErrHTTPRequestFailed, err))
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", errors.Join(errUtils.ErrHTTPRequestFailed, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var reader io.Reader = resp.Body
	if maxBytes > 0 {
		reader = io.LimitReader(resp.Body, maxBytes+1)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", errors.Join(errUtils.ErrHTTPRequestFailed, err))
	}

	if maxBytes > 0 && int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", errUtils.ErrResponseTooLarge, maxBytes)
	}

	return body, nil
}
