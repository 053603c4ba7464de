package blobcache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache", "blobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutGet(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("blob-1", []byte("cached bytes")))

	data, err := c.Get("blob-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("cached bytes"), data)
}

func TestCache_Miss(t *testing.T) {
	c := openTestCache(t)

	_, err := c.Get("absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Has(t *testing.T) {
	c := openTestCache(t)

	found, err := c.Has("blob-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Put("blob-1", []byte("x")))
	found, err = c.Has("blob-1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCache_Delete(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("blob-1", []byte("x")))
	require.NoError(t, c.Delete("blob-1"))

	_, err := c.Get("blob-1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// Deleting again is not an error.
	require.NoError(t, c.Delete("blob-1"))
}

func TestCache_Overwrite(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("blob-1", []byte("old")))
	require.NoError(t, c.Put("blob-1", []byte("new")))

	data, err := c.Get("blob-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestCache_Len(t *testing.T) {
	c := openTestCache(t)

	n, err := c.Len()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, c.Put("a", []byte("1")))
	require.NoError(t, c.Put("b", []byte("2")))

	n, err = c.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCache_EmptyBlobID(t *testing.T) {
	c := openTestCache(t)

	assert.ErrorIs(t, c.Put("", []byte("x")), ErrEmptyBlobID)
	_, err := c.Get("")
	assert.ErrorIs(t, err, ErrEmptyBlobID)
}

func TestCache_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blobs.db")

	c, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c.Put("blob-1", []byte("survives reopen")))
	require.NoError(t, c.Close())

	c, err = Open(path)
	require.NoError(t, err)
	defer c.Close()

	data, err := c.Get("blob-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("survives reopen"), data)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
