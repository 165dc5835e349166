// Package http provides an HTTP-based implementation of wikisect.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/wikisect"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = wikisect.DefaultTimeout

// Ensure Fetcher implements wikisect.Fetcher at compile time.
var _ wikisect.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Bodies are decoded to UTF-8 using the response's declared or sniffed charset.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *hostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit caps requests per second to each host.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = newHostLimiter(rps)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := parseURL(rawURL)
	if err != nil {
		return "", err
	}

	if f.limiter != nil {
		if err := f.limiter.bucket(u.Host).Wait(ctx); err != nil {
			// A done context is classified like a failed request; otherwise
			// the deadline is too close for the next token.
			if ctx.Err() != nil {
				return "", classify(rawURL, ctx.Err())
			}
			return "", wikisect.Errorf(wikisect.ETIMEOUT, "gave up waiting to fetch %s: %v", rawURL, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", wikisect.Errorf(wikisect.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", wikisect.Errorf(wikisect.EMALFORMED, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", wikisect.Errorf(wikisect.EMALFORMED, "cannot decode response from %s: %v", rawURL, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", classify(rawURL, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func parseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, wikisect.Errorf(wikisect.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, wikisect.Errorf(wikisect.EINVALID, "invalid URL %q: missing http or https scheme", rawURL)
	}
	if u.Host == "" {
		return nil, wikisect.Errorf(wikisect.EINVALID, "invalid URL %q: missing host", rawURL)
	}
	return u, nil
}

// classify maps transport errors onto timeout and network failures.
func classify(rawURL string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return wikisect.Errorf(wikisect.ETIMEOUT, "server timeout for %s, try a different URL", rawURL)
	}
	return wikisect.Errorf(wikisect.ENETWORK, "connection error for %s, check network connectivity: %v", rawURL, err)
}
