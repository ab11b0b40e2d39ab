package crypto

import (
	"bytes"
	"fmt"
)

// Pad appends PKCS#7 padding. An aligned input gains a whole block so that
// Unpad is never ambiguous.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

// Unpad strips PKCS#7 padding, failing on anything malformed.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("padded length %d is not a positive multiple of %d", len(data), blockSize)
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding value: %d", n)
	}

	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid PKCS7 padding")
		}
	}

	return data[:len(data)-n], nil
}
