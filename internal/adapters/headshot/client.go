// Package headshot fetches per-player headshot images from an upstream CDN.
// Failures are always non-fatal to the caller; they surface as typed errors
// the API layer degrades gracefully on.
package headshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/courtside-labs/courtside/pkg/metrics"
)

// defaultTimeout caps the outbound fetch.
const defaultTimeout = 3 * time.Second

// maxImageBytes bounds the response body read.
const maxImageBytes = 8 << 20

// Image is a fetched headshot.
type Image struct {
	ContentType string
	Data        []byte
}

// Client fetches headshots by player id.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout overrides the fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient creates a headshot client for the given base URL. Images are
// fetched from <baseURL>/<playerID>.png.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the headshot for a player. ErrNotFound on upstream 404,
// ErrFetchFailed on everything else that goes wrong.
func (c *Client) Fetch(ctx context.Context, playerID int64) (Image, error) {
	url := fmt.Sprintf("%s/%d.png", c.baseURL, playerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		metrics.RecordHeadshotFetch("error")
		return Image{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordHeadshotFetch("timeout")
		return Image{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.RecordHeadshotFetch("not_found")
		return Image{}, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		metrics.RecordHeadshotFetch("error")
		return Image{}, fmt.Errorf("%w: upstream status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		metrics.RecordHeadshotFetch("error")
		return Image{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	metrics.RecordHeadshotFetch("ok")
	return Image{ContentType: contentType, Data: data}, nil
}
