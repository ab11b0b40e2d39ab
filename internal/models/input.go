package models

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// LooksBinary reports whether content is probably not text: a NUL byte, or
// more than 30% control characters, in the first 8KB.
func LooksBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	checkLen := len(content)
	if checkLen > 8192 {
		checkLen = 8192
	}

	if bytes.IndexByte(content[:checkLen], 0) != -1 {
		return true
	}

	nonPrintable := 0
	for i := 0; i < checkLen; i++ {
		b := content[i]
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonPrintable++
		}
	}

	return float64(nonPrintable)/float64(checkLen) > 0.3
}

// CheckText validates a payload read from stdin before it is encrypted.
func CheckText(content []byte) error {
	if LooksBinary(content) {
		return fmt.Errorf("%w: input looks like binary data", ErrInvalidInput)
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidInput)
	}
	return nil
}
