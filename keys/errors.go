package keys

import "errors"

var (
	// ErrEmptySecret indicates the input keying material is empty.
	ErrEmptySecret = errors.New("keys: input keying material is empty")

	// ErrNilPrivateKey indicates a nil private key was provided.
	ErrNilPrivateKey = errors.New("keys: private key is nil")

	// ErrNilPublicKey indicates a nil public key was provided.
	ErrNilPublicKey = errors.New("keys: public key is nil")

	// ErrDerivationFailed indicates HKDF key derivation failed.
	ErrDerivationFailed = errors.New("keys: key derivation failed")
)
