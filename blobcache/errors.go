package blobcache

import "errors"

var (
	// ErrCacheMiss indicates no cached blob exists for the given blob ID.
	ErrCacheMiss = errors.New("blobcache: blob not cached")

	// ErrEmptyBlobID indicates an empty blob ID was provided.
	ErrEmptyBlobID = errors.New("blobcache: blob ID must not be empty")

	// ErrInvalidPath indicates the database path is empty.
	ErrInvalidPath = errors.New("blobcache: invalid database path")
)
