// Package walrus is a client SDK for the Walrus decentralized blob-storage
// network. Blobs are stored via publisher endpoints and retrieved from
// aggregator endpoints by their content-derived blob ID. The encryption
// subpackage provides client-side confidentiality; the client touches it
// only through the encryption.BlobCipher interface.
package walrus

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/soya-miruku/walrus-sdk/blobcache"
)

// Client talks to a pool of Walrus aggregator and publisher endpoints with
// round-robin failover and bounded retries. Safe for concurrent use.
type Client struct {
	aggregators []string
	publishers  []string
	maxRetries  int
	retryDelay  time.Duration
	httpClient  *http.Client
	cache       *blobcache.Cache
}

// NewClient creates a client from cfg. Zero-valued retry and timeout
// fields take defaults; endpoint lists are validated up front.
func NewClient(cfg Config) (*Client, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}

	return &Client{
		aggregators: trimSlashes(cfg.AggregatorURLs),
		publishers:  trimSlashes(cfg.PublisherURLs),
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelay,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
	}, nil
}

// WithCache attaches a local blob cache. Read consults it before the
// network and back-fills it on success. Returns the client for chaining.
func (c *Client) WithCache(cache *blobcache.Cache) *Client {
	c.cache = cache
	return c
}

func trimSlashes(urls []string) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = strings.TrimRight(u, "/")
	}
	return out
}

// do runs one request against the endpoint pool: up to maxRetries attempts,
// rotating round-robin over bases, sleeping retryDelay between attempts.
// Connection errors and 5xx responses are retried; 404 maps to
// ErrBlobNotFound and other non-2xx statuses are terminal. body may be nil;
// it is replayed from the start on every attempt.
//
// On success the response body is still open; the caller owns it.
func (c *Client) do(ctx context.Context, method string, bases []string, path string, body []byte) (*http.Response, error) {
	if len(bases) == 0 {
		return nil, ErrNoEndpoints
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.wait(ctx); err != nil {
				return nil, err
			}
		}
		base := bases[attempt%len(bases)]

		var reqBody io.Reader
		if body != nil {
			reqBody = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, base+path, reqBody)
		if err != nil {
			return nil, fmt.Errorf("walrus: create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/octet-stream")
			req.ContentLength = int64(len(body))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return resp, nil
		case resp.StatusCode == http.StatusNotFound:
			drainClose(resp)
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, path)
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, base, readErrorBody(resp))
			drainClose(resp)
			continue
		default:
			err := fmt.Errorf("%w: HTTP %d: %s", ErrUnexpectedResponse, resp.StatusCode, readErrorBody(resp))
			drainClose(resp)
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllEndpointsFailed, lastErr)
}

// wait sleeps for the retry delay, returning early if ctx is canceled.
func (c *Client) wait(ctx context.Context) error {
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// readErrorBody returns a bounded excerpt of an error response body.
func readErrorBody(resp *http.Response) string {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return string(data)
}

func drainClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
