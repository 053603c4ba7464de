package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"sync"
)

// cbcCipher implements BlobCipher with AES-CBC and PKCS#7 padding.
//
// The instance IV is reused verbatim on every Encrypt call, so output is
// deterministic for a fixed (key, iv, plaintext). CBC ciphertexts carry no
// authentication; Decrypt on tampered input either succeeds with garbage
// caught by the padding check or fails with ErrInvalidPadding — neither is
// an integrity guarantee.
type cbcCipher struct {
	key []byte
	iv  []byte

	once    sync.Once
	block   cipher.Block
	initErr error
}

var _ BlobCipher = (*cbcCipher)(nil)

// NewCBCCipher creates an AES-CBC blob cipher with an explicit IV. The key
// must be 16, 24, or 32 bytes and the IV exactly 16 bytes. IV uniqueness
// per (key, plaintext) pair is the caller's responsibility.
func NewCBCCipher(key, iv []byte) (BlobCipher, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := validateIV(iv, aes.BlockSize); err != nil {
		return nil, err
	}
	return &cbcCipher{key: key, iv: iv}, nil
}

// init builds and caches the block cipher. Single-flight under concurrent
// first use.
func (c *cbcCipher) init() (cipher.Block, error) {
	c.once.Do(func() {
		block, err := aes.NewCipher(c.key)
		if err != nil {
			c.initErr = fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
			return
		}
		c.block = block
	})
	return c.block, c.initErr
}

// Encrypt pads plaintext to a block multiple, encrypts it under the
// instance IV, and frames the result. Deterministic for fixed inputs.
func (c *cbcCipher) Encrypt(plaintext []byte) ([]byte, error) {
	block, err := c.init()
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, c.iv).CryptBlocks(ciphertext, padded)
	return frame(c.iv, ciphertext), nil
}

// Decrypt unframes the container, decrypts under the embedded IV (which is
// authoritative, not the instance IV), and strips the padding.
func (c *cbcCipher) Decrypt(container []byte) ([]byte, error) {
	block, err := c.init()
	if err != nil {
		return nil, err
	}

	iv, payload, err := unframe(container, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 || len(payload)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not block-aligned", ErrDecryptionFailed)
	}

	padded := make([]byte, len(payload))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, payload)
	return pkcs7Unpad(padded, aes.BlockSize)
}

// pkcs7Pad appends PKCS#7 padding. A plaintext already on a block boundary
// gains a full block of padding — padLen is always in [1, blockSize].
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+padLen), data...),
		bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad validates and strips PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidPadding)
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: pad length %d out of range", ErrInvalidPadding, padLen)
	}
	if padLen > len(data) {
		return nil, fmt.Errorf("%w: pad length %d exceeds buffer", ErrInvalidPadding, padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrInvalidPadding)
		}
	}
	return data[:len(data)-padLen], nil
}
