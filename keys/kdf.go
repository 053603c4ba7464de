// Package keys derives AES-256 blob-encryption keys. The cipher layer never
// generates key material itself; callers either bring their own 32-byte key
// or derive one here, from a shared secret (HKDF) or from an ECDH agreement
// with another party.
package keys

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// HKDFInfo is the domain-separation string used in key derivation.
	HKDFInfo = "walrus-blob-encryption"

	// KeySize is the length of derived keys in bytes (AES-256).
	KeySize = 32
)

// DeriveKey derives a 32-byte AES-256 key from input keying material using
// HKDF-SHA256. Deterministic: the same (ikm, salt) pair always yields the
// same key. salt may be nil; binding it to the blob (e.g. ContentHash of
// the plaintext) scopes the key to that content.
func DeriveKey(ikm, salt []byte) ([]byte, error) {
	if len(ikm) == 0 {
		return nil, ErrEmptySecret
	}

	r := hkdf.New(sha256.New, ikm, salt, []byte(HKDFInfo))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}
	return key, nil
}

// ContentHash computes the double-SHA256 commitment of a blob's plaintext.
// Returns SHA256(SHA256(data)), 32 bytes. Useful as a DeriveKey salt and as
// a content identifier that does not reveal the plaintext hash directly.
func ContentHash(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}
