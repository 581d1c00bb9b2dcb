package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"wikiharvest/internal/model"
)

// HTTPFetcher retrieves pages from a live wiki over HTTP.
//
// Design decision: We require an external *http.Client rather than building
// one internally because:
//  1. Timeouts and transport settings belong to the caller's configuration
//  2. Tests can inject httptest server clients
//  3. Consistent with how the other components receive their collaborators
type HTTPFetcher struct {
	// client performs the HTTP requests.
	client *http.Client

	// baseURL is the article URL prefix, e.g. "https://terraria.wiki.gg/wiki/".
	// The page identifier is appended directly.
	baseURL string

	// userAgent is the User-Agent header to send.
	userAgent string

	// maxBodySize limits how many response bytes are read.
	maxBodySize int64
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) HTTPOption {
	return func(f *HTTPFetcher) {
		f.maxBodySize = size
	}
}

// NewHTTPFetcher creates an HTTPFetcher for the given article base URL.
func NewHTTPFetcher(client *http.Client, baseURL string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:      client,
		baseURL:     baseURL,
		userAgent:   "wikiharvest/1.0",
		maxBodySize: 5 * 1024 * 1024, // 5MB
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves the article markup for the identifier.
// A 404 response maps to ErrNotFound; transport errors and other non-2xx
// statuses are reported as fetch errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, id model.PageIdentifier) ([]byte, error) {
	pageURL := f.baseURL + id.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", pageURL, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, pageURL)
	}

	// Read body with limit to avoid unbounded memory use
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", pageURL, err)
	}

	return body, nil
}
