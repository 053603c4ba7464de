package walrus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/soya-miruku/walrus-sdk/encryption"
)

// StoreOptions configures blob storage.
type StoreOptions struct {
	// Epochs is the number of storage epochs to pay for. Zero uses the
	// publisher's default.
	Epochs int
}

// newlyCreatedResponse is the publisher's reply for a first-time store.
type newlyCreatedResponse struct {
	NewlyCreated struct {
		BlobObject struct {
			BlobID string `json:"blobId"`
		} `json:"blobObject"`
	} `json:"newlyCreated"`
}

// alreadyCertifiedResponse is the reply when the blob already exists.
type alreadyCertifiedResponse struct {
	AlreadyCertified struct {
		BlobID string `json:"blobId"`
	} `json:"alreadyCertified"`
}

func storePath(opts *StoreOptions) string {
	path := "/v1/store"
	if opts != nil && opts.Epochs > 0 {
		path += "?epochs=" + strconv.Itoa(opts.Epochs)
	}
	return path
}

// parseStoreResponse extracts the blob ID from a publisher response, which
// is either a newlyCreated or an alreadyCertified document.
func parseStoreResponse(data []byte) (string, error) {
	var created newlyCreatedResponse
	if err := json.Unmarshal(data, &created); err == nil && created.NewlyCreated.BlobObject.BlobID != "" {
		return created.NewlyCreated.BlobObject.BlobID, nil
	}

	var certified alreadyCertifiedResponse
	if err := json.Unmarshal(data, &certified); err == nil && certified.AlreadyCertified.BlobID != "" {
		return certified.AlreadyCertified.BlobID, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnexpectedResponse, string(data))
}

// Store uploads data to a publisher and returns the blob ID. Storing the
// same bytes twice returns the same ID (content addressing).
func (c *Client) Store(ctx context.Context, data []byte, opts *StoreOptions) (string, error) {
	resp, err := c.do(ctx, http.MethodPut, c.publishers, storePath(opts), data)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("walrus: read store response: %w", err)
	}
	return parseStoreResponse(respData)
}

// StoreReader uploads data from r. contentLength is the total size, or -1
// if unknown. The reader is consumed once, so this path makes a single
// attempt against the first publisher with no failover.
func (c *Client) StoreReader(ctx context.Context, r io.Reader, contentLength int64, opts *StoreOptions) (string, error) {
	if len(c.publishers) == 0 {
		return "", ErrNoEndpoints
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.publishers[0]+storePath(opts), r)
	if err != nil {
		return "", fmt.Errorf("walrus: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if contentLength >= 0 {
		req.ContentLength = contentLength
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAllEndpointsFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("walrus: read store response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: HTTP %d: %s", ErrUnexpectedResponse, resp.StatusCode, string(respData))
	}
	return parseStoreResponse(respData)
}

// StoreFromURL downloads sourceURL and stores the content, returning the
// blob ID.
func (c *Client) StoreFromURL(ctx context.Context, sourceURL string, opts *StoreOptions) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("walrus: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("walrus: download source: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: source returned HTTP %d", ErrUnexpectedResponse, resp.StatusCode)
	}
	return c.StoreReader(ctx, resp.Body, resp.ContentLength, opts)
}

// StoreFile stores a local file and returns the blob ID.
func (c *Client) StoreFile(ctx context.Context, filePath string, opts *StoreOptions) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("walrus: open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("walrus: stat file: %w", err)
	}
	return c.StoreReader(ctx, file, stat.Size(), opts)
}

// StoreEncrypted encrypts data with cipher and stores the resulting
// container. The returned blob ID addresses the ciphertext; with the
// AES256GCM suite it differs on every call even for identical plaintext.
func (c *Client) StoreEncrypted(ctx context.Context, data []byte, cipher encryption.BlobCipher, opts *StoreOptions) (string, error) {
	container, err := cipher.Encrypt(data)
	if err != nil {
		return "", err
	}
	return c.Store(ctx, container, opts)
}

// StoreFileEncrypted encrypts a local file with cipher and stores the
// container. The container is buffered in memory before upload so that the
// retry path can replay it.
func (c *Client) StoreFileEncrypted(ctx context.Context, filePath string, cipher encryption.BlobCipher, opts *StoreOptions) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("walrus: open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var container bytes.Buffer
	if err := cipher.EncryptStream(file, &container); err != nil {
		return "", err
	}
	return c.Store(ctx, container.Bytes(), opts)
}
