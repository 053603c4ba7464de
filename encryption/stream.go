package encryption

import (
	"fmt"
	"io"
)

// The stream adapters are full-buffering shims over the whole-buffer
// operations, not incremental streaming: the source is read to exhaustion,
// transformed in one call, and written to dst as a single chunk. Memory use
// is proportional to the source size and there is no internal cap. If
// reading src fails, nothing is written to dst.

func (c *gcmCipher) EncryptStream(src io.Reader, dst io.Writer) error {
	return pipeThrough(src, dst, c.Encrypt)
}

func (c *gcmCipher) DecryptStream(src io.Reader, dst io.Writer) error {
	return pipeThrough(src, dst, c.Decrypt)
}

func (c *cbcCipher) EncryptStream(src io.Reader, dst io.Writer) error {
	return pipeThrough(src, dst, c.Encrypt)
}

func (c *cbcCipher) DecryptStream(src io.Reader, dst io.Writer) error {
	return pipeThrough(src, dst, c.Decrypt)
}

// pipeThrough drains src, applies transform to the combined buffer, and
// writes the result to dst in one Write call.
func pipeThrough(src io.Reader, dst io.Writer, transform func([]byte) ([]byte, error)) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("encryption: read source: %w", err)
	}
	out, err := transform(data)
	if err != nil {
		return err
	}
	if _, err := dst.Write(out); err != nil {
		return fmt.Errorf("encryption: write result: %w", err)
	}
	return nil
}
