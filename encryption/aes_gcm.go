package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"sync"
)

const (
	// gcmIVSize is the AES-GCM nonce length in bytes.
	gcmIVSize = 12

	// gcmTagSize is the GCM authentication tag length in bytes.
	gcmTagSize = 16
)

// gcmCipher implements BlobCipher with AES-GCM. The AEAD handle is built
// on first use and cached for the instance lifetime.
type gcmCipher struct {
	key []byte

	once    sync.Once
	aead    cipher.AEAD
	initErr error
}

var _ BlobCipher = (*gcmCipher)(nil)

// NewGCMCipher creates an AES-GCM blob cipher. The key must be 16, 24, or
// 32 bytes; no IV is supplied — a fresh random nonce is generated inside
// every Encrypt call.
func NewGCMCipher(key []byte) (BlobCipher, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	return &gcmCipher{key: key}, nil
}

// init builds and caches the AEAD. Single-flight under concurrent first use.
func (c *gcmCipher) init() (cipher.AEAD, error) {
	c.once.Do(func() {
		block, err := aes.NewCipher(c.key)
		if err != nil {
			c.initErr = fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
			return
		}
		c.aead, c.initErr = cipher.NewGCM(block)
	})
	return c.aead, c.initErr
}

// Encrypt seals plaintext under a fresh random 12-byte nonce and frames it.
// Two calls with identical inputs produce different containers.
func (c *gcmCipher) Encrypt(plaintext []byte) ([]byte, error) {
	aead, err := c.init()
	if err != nil {
		return nil, err
	}

	iv := make([]byte, gcmIVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("encryption: nonce generation failed: %w", err)
	}

	// Seal appends the 16-byte tag to the ciphertext.
	ciphertext := aead.Seal(nil, iv, plaintext, nil)
	return frame(iv, ciphertext), nil
}

// Decrypt unframes the container and opens the ciphertext under the
// embedded nonce. Tag verification failure and a wrong key surface the same
// opaque ErrDecryptionFailed, deliberately indistinguishable.
func (c *gcmCipher) Decrypt(container []byte) ([]byte, error) {
	aead, err := c.init()
	if err != nil {
		return nil, err
	}

	iv, payload, err := unframe(container, gcmIVSize)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, iv, payload, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	// Normalize nil to empty slice for consistency.
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}
