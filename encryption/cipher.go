// Package encryption implements client-side blob encryption for Walrus.
//
// Both cipher suites produce the same framed container:
//
//	magic("WAL", 3 bytes) || iv || ciphertext
//
// where the IV is 12 bytes for AES256GCM (random per call, tag appended to
// the ciphertext) and 16 bytes for AES256CBC (fixed per instance). The
// container format is pinned; blobs encrypted by other Walrus SDKs with the
// same suite and key decrypt here, and vice versa.
package encryption

import (
	"fmt"
	"io"
)

// BlobCipher encrypts and decrypts blob payloads. One instance binds one
// key (and, for AES256CBC, one IV) for its lifetime. Instances are safe for
// concurrent use; they hold no mutable state beyond a lazily built, cached
// cipher handle.
type BlobCipher interface {
	// Encrypt returns a freshly allocated blob container for plaintext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt reverses Encrypt. The container's embedded IV is
	// authoritative; a wrong key or corrupted input fails loudly and
	// never yields garbage plaintext silently (GCM suite only — the CBC
	// suite detects corruption only incidentally via padding checks).
	Decrypt(container []byte) ([]byte, error)

	// EncryptStream reads src to exhaustion, encrypts the whole buffer,
	// and writes the container to dst in one chunk. It buffers the entire
	// source in memory with no size cap; bounding input is the caller's
	// responsibility.
	EncryptStream(src io.Reader, dst io.Writer) error

	// DecryptStream is the inverse of EncryptStream, with the same
	// full-buffering behavior.
	DecryptStream(src io.Reader, dst io.Writer) error
}

// Options configures New.
type Options struct {
	// Key is the AES key: 16, 24, or 32 bytes. Required.
	Key []byte

	// Suite selects the cipher strategy. Required.
	Suite CipherSuite

	// IV is the 16-byte initialization vector for AES256CBC. Required for
	// that suite, ignored by AES256GCM. The caller is responsible for IV
	// uniqueness per (key, plaintext) pair; the library reuses it verbatim
	// on every Encrypt call of the instance.
	IV []byte
}

// New constructs a BlobCipher for the requested suite. Key and IV are
// validated here, before any cryptographic work.
func New(opts Options) (BlobCipher, error) {
	switch opts.Suite {
	case AES256GCM:
		return NewGCMCipher(opts.Key)
	case AES256CBC:
		if opts.IV == nil {
			return nil, ErrMissingIV
		}
		return NewCBCCipher(opts.Key, opts.IV)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSuite, opts.Suite)
	}
}
