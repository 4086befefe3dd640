// Package http provides an HTTP implementation of hnthread.ItemFetcher
// backed by the Algolia Hacker News items API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/hnthread"
)

// DefaultBaseURL is the root of the Algolia HN API.
const DefaultBaseURL = "https://hn.algolia.com/api/v1"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure ItemFetcher implements hnthread.ItemFetcher at compile time.
var _ hnthread.ItemFetcher = (*ItemFetcher)(nil)

// ItemFetcher retrieves items, with their nested comment trees, in a
// single request.
type ItemFetcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// Option configures an ItemFetcher.
type Option func(*ItemFetcher)

// WithTimeout sets the timeout for HTTP requests. Zero disables it.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *ItemFetcher) {
		f.timeout = d
	}
}

// WithBaseURL overrides the API root. Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(f *ItemFetcher) {
		f.baseURL = strings.TrimRight(u, "/")
	}
}

// NewItemFetcher creates a new HTTP-based ItemFetcher.
func NewItemFetcher(opts ...Option) *ItemFetcher {
	f := &ItemFetcher{
		baseURL: DefaultBaseURL,
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

// FetchItem retrieves the item with the given id.
func (f *ItemFetcher) FetchItem(ctx context.Context, id string) (*hnthread.Item, error) {
	endpoint := f.baseURL + "/items/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch item %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		code := hnthread.EUNAVAILABLE
		if resp.StatusCode == http.StatusNotFound {
			code = hnthread.ENOTFOUND
		}
		return nil, hnthread.Errorf(code, "failed to fetch HN item: %s", statusText(resp))
	}

	var item hnthread.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, hnthread.Errorf(hnthread.EINVALID, "decode item %s: %v", id, err)
	}

	return &item, nil
}

// statusText returns the reason phrase of resp, e.g. "Not Found".
func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
