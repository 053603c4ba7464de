package encryption

// CipherSuite selects the encryption strategy bound to a cipher instance.
// The values are stable strings safe to persist alongside stored blobs.
type CipherSuite string

const (
	// AES256GCM is AES in Galois/Counter mode (recommended). Authenticated
	// encryption with a fresh random 12-byte nonce per Encrypt call, so
	// output is non-deterministic by design.
	AES256GCM CipherSuite = "AES256GCM"

	// AES256CBC is AES in CBC mode with PKCS#7 padding and a caller-supplied
	// 16-byte IV that is reused for every Encrypt call on the instance.
	// Output is deterministic for a fixed (key, iv, plaintext), which suits
	// content-addressing but exposes standard CBC IV-reuse weaknesses, and
	// the ciphertext carries no authentication. Prefer AES256GCM unless
	// deterministic output is required.
	AES256CBC CipherSuite = "AES256CBC"
)

// IsValid reports whether the suite is supported.
func (s CipherSuite) IsValid() bool {
	switch s {
	case AES256GCM, AES256CBC:
		return true
	default:
		return false
	}
}

// RequiresIV reports whether the suite needs an explicit IV at construction.
func (s CipherSuite) RequiresIV() bool {
	return s == AES256CBC
}
