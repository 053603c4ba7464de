// Package blobcache provides a local bbolt-backed cache of blobs fetched
// from Walrus aggregators. Blob IDs are content-derived and blobs are
// immutable, so cached entries never go stale.
package blobcache

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketBlobs = []byte("blobs")

// Cache is a persistent blob cache keyed by blob ID. Safe for concurrent
// use; bbolt serializes writers internally.
type Cache struct {
	db *bbolt.DB
}

// Open opens or creates the cache database at path. The parent directory
// is created if it does not exist.
func Open(path string) (*Cache, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("blobcache: create directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("blobcache: open db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketBlobs)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blobcache: create bucket: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error { return c.db.Close() }

// Put stores a blob under its blob ID, overwriting any existing entry.
func (c *Cache) Put(blobID string, data []byte) error {
	if blobID == "" {
		return ErrEmptyBlobID
	}
	err := c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBlobs).Put([]byte(blobID), data)
	})
	if err != nil {
		return fmt.Errorf("blobcache: put %s: %w", blobID, err)
	}
	return nil
}

// Get returns the cached blob for blobID, or ErrCacheMiss.
func (c *Cache) Get(blobID string) ([]byte, error) {
	if blobID == "" {
		return nil, ErrEmptyBlobID
	}
	var data []byte
	err := c.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketBlobs).Get([]byte(blobID))
		if v == nil {
			return ErrCacheMiss
		}
		// v is only valid inside the transaction.
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Has reports whether a blob is cached.
func (c *Cache) Has(blobID string) (bool, error) {
	if blobID == "" {
		return false, ErrEmptyBlobID
	}
	var found bool
	err := c.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketBlobs).Get([]byte(blobID)) != nil
		return nil
	})
	return found, err
}

// Delete removes a cached blob. Deleting an absent entry is not an error.
func (c *Cache) Delete(blobID string) error {
	if blobID == "" {
		return ErrEmptyBlobID
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBlobs).Delete([]byte(blobID))
	})
}

// Len returns the number of cached blobs.
func (c *Cache) Len() (int, error) {
	var n int
	err := c.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketBlobs).Stats().KeyN
		return nil
	})
	return n, err
}
