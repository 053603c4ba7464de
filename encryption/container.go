package encryption

import (
	"bytes"
	"fmt"
)

// containerMagic tags every encrypted blob container: "WAL".
// It is a format marker only and carries no cryptographic weight.
var containerMagic = []byte{0x57, 0x41, 0x4C}

// Container layout: magic(3) || iv(12 or 16) || ciphertext.
// For the GCM suite the ciphertext ends with a 16-byte authentication tag
// appended by the AEAD primitive.

// frame assembles a blob container from an IV and the ciphertext payload.
func frame(iv, payload []byte) []byte {
	out := make([]byte, 0, len(containerMagic)+len(iv)+len(payload))
	out = append(out, containerMagic...)
	out = append(out, iv...)
	out = append(out, payload...)
	return out
}

// unframe splits a blob container into its IV and ciphertext payload.
// ivLen is suite-dependent (12 for GCM, 16 for CBC). The length and magic
// checks run before any cryptographic operation touches the input.
func unframe(container []byte, ivLen int) (iv, payload []byte, err error) {
	minLen := len(containerMagic) + ivLen
	if len(container) < minLen {
		return nil, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidContainer, len(container), minLen)
	}
	if !bytes.Equal(container[:len(containerMagic)], containerMagic) {
		return nil, nil, fmt.Errorf("%w: bad magic", ErrInvalidContainer)
	}
	iv = container[len(containerMagic):minLen]
	payload = container[minLen:]
	return iv, payload, nil
}
