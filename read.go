package walrus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/soya-miruku/walrus-sdk/blobcache"
	"github.com/soya-miruku/walrus-sdk/encryption"
)

// BlobMetadata describes a stored blob without fetching its content.
type BlobMetadata struct {
	Size        int64
	ContentType string
}

func blobPath(blobID string) string {
	return "/v1/" + url.PathEscape(blobID)
}

// Read fetches a blob from an aggregator by ID. When a cache is attached
// the cached copy is returned without touching the network, and network
// reads back-fill the cache.
func (c *Client) Read(ctx context.Context, blobID string) ([]byte, error) {
	if c.cache != nil {
		data, err := c.cache.Get(blobID)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, blobcache.ErrCacheMiss) {
			return nil, err
		}
	}

	resp, err := c.do(ctx, http.MethodGet, c.aggregators, blobPath(blobID), nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("walrus: read blob body: %w", err)
	}

	if c.cache != nil {
		// A cache write failure must not fail the read.
		_ = c.cache.Put(blobID, data)
	}
	return data, nil
}

// ReadReader fetches a blob and returns its body for streaming. The caller
// must close it. The cache is bypassed in both directions.
func (c *Client) ReadReader(ctx context.Context, blobID string) (io.ReadCloser, error) {
	resp, err := c.do(ctx, http.MethodGet, c.aggregators, blobPath(blobID), nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// ReadToFile fetches a blob and writes it to filePath.
func (c *Client) ReadToFile(ctx context.Context, blobID, filePath string) error {
	body, err := c.ReadReader(ctx, blobID)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	outFile, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("walrus: create file: %w", err)
	}
	defer func() { _ = outFile.Close() }()

	if _, err := io.Copy(outFile, body); err != nil {
		return fmt.Errorf("walrus: write file: %w", err)
	}
	return nil
}

// Head returns metadata for a blob without downloading it.
func (c *Client) Head(ctx context.Context, blobID string) (*BlobMetadata, error) {
	resp, err := c.do(ctx, http.MethodHead, c.aggregators, blobPath(blobID), nil)
	if err != nil {
		return nil, err
	}
	drainClose(resp)

	return &BlobMetadata{
		Size:        resp.ContentLength,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// GetAPISpec retrieves the API specification from an aggregator or
// publisher endpoint.
func (c *Client) GetAPISpec(ctx context.Context, isAggregator bool) ([]byte, error) {
	bases := c.publishers
	if isAggregator {
		bases = c.aggregators
	}

	resp, err := c.do(ctx, http.MethodGet, bases, "/v1/api", nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return io.ReadAll(resp.Body)
}

// ReadEncrypted fetches a blob and decrypts it with cipher. The cache, if
// attached, holds the ciphertext container, never the plaintext.
func (c *Client) ReadEncrypted(ctx context.Context, blobID string, cipher encryption.BlobCipher) ([]byte, error) {
	container, err := c.Read(ctx, blobID)
	if err != nil {
		return nil, err
	}
	return cipher.Decrypt(container)
}

// ReadToFileEncrypted fetches a blob, decrypts it with cipher, and writes
// the plaintext to filePath.
func (c *Client) ReadToFileEncrypted(ctx context.Context, blobID, filePath string, cipher encryption.BlobCipher) error {
	body, err := c.ReadReader(ctx, blobID)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	outFile, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("walrus: create file: %w", err)
	}
	defer func() { _ = outFile.Close() }()

	return cipher.DecryptStream(body, outFile)
}
