package encryption

import "fmt"

// validateKey checks that key is a valid AES key: 16, 24, or 32 bytes.
// Runs before any key material reaches the underlying cipher.
func validateKey(key []byte) error {
	switch len(key) {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}
}

// validateIV checks that iv is exactly size bytes. A nil IV is reported
// as missing rather than mis-sized so the caller can tell "forgot the IV"
// apart from "wrong IV".
func validateIV(iv []byte, size int) error {
	if iv == nil {
		return ErrMissingIV
	}
	if len(iv) != size {
		return fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidIVSize, size, len(iv))
	}
	return nil
}
