package encryption

import "errors"

var (
	// ErrInvalidKeySize indicates the key is not 16, 24, or 32 bytes
	// (AES-128, AES-192, AES-256).
	ErrInvalidKeySize = errors.New("encryption: invalid key size (must be 16, 24, or 32 bytes)")

	// ErrInvalidIVSize indicates the IV does not have the exact length
	// required by the cipher suite.
	ErrInvalidIVSize = errors.New("encryption: invalid IV size")

	// ErrMissingIV indicates a cipher suite that requires an explicit IV
	// was constructed without one.
	ErrMissingIV = errors.New("encryption: cipher suite requires an IV")

	// ErrUnsupportedSuite indicates an unknown cipher suite identifier.
	ErrUnsupportedSuite = errors.New("encryption: unsupported cipher suite")

	// ErrInvalidContainer indicates the input is too short to be a blob
	// container or does not start with the container magic bytes.
	ErrInvalidContainer = errors.New("encryption: invalid blob container")

	// ErrInvalidPadding indicates PKCS#7 padding validation failed during
	// CBC decryption. May mean a wrong key or tampered ciphertext; CBC has
	// no authentication, so padding checks are the only (incidental) signal.
	ErrInvalidPadding = errors.New("encryption: invalid padding")

	// ErrDecryptionFailed indicates the underlying cipher rejected the
	// operation. For the GCM suite this deliberately covers both a wrong
	// key and tampered ciphertext without distinguishing them.
	ErrDecryptionFailed = errors.New("encryption: decryption failed: invalid key or corrupted data")
)
