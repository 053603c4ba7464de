package keys

import (
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
)

// SharedSecret computes the secp256k1 ECDH shared secret between a private
// key and a counterparty's public key. Returns the x-coordinate of the
// shared point as 32 bytes, zero-padded big-endian. Symmetric:
// SharedSecret(a, B) == SharedSecret(b, A).
func SharedSecret(privateKey *ec.PrivateKey, publicKey *ec.PublicKey) ([]byte, error) {
	if privateKey == nil {
		return nil, ErrNilPrivateKey
	}
	if publicKey == nil {
		return nil, ErrNilPublicKey
	}

	sharedPoint, err := privateKey.DeriveSharedSecret(publicKey)
	if err != nil {
		return nil, fmt.Errorf("keys: ECDH failed: %w", err)
	}

	xBytes := sharedPoint.X.Bytes()
	if len(xBytes) < 32 {
		padded := make([]byte, 32)
		copy(padded[32-len(xBytes):], xBytes)
		return padded, nil
	}
	return xBytes[:32], nil
}

// SharedKey derives a 32-byte AES-256 blob key from an ECDH agreement, so
// a sender and recipient arrive at the same key without ever transmitting
// it. salt may be nil or a per-blob value such as ContentHash.
func SharedKey(privateKey *ec.PrivateKey, publicKey *ec.PublicKey, salt []byte) ([]byte, error) {
	secret, err := SharedSecret(privateKey, publicKey)
	if err != nil {
		return nil, err
	}
	return DeriveKey(secret, salt)
}
