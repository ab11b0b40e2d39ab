package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	SchemeSHA256 = "sha256"
	SchemePBKDF2 = "pbkdf2"

	// DefaultPBKDF2Iterations matches the device firmware. It is low on
	// purpose: the firmware derives on a microcontroller.
	DefaultPBKDF2Iterations = 1000
)

// DeriveKey hashes the UTF-8 bytes of password with SHA-256. Identical
// passwords always give identical keys; there is no salt.
func DeriveKey(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

// PasswordHash is the default scheme. The envelope header is used as the IV.
type PasswordHash struct{}

func (PasswordHash) Name() string { return SchemeSHA256 }

func (PasswordHash) Derive(password string, header []byte) ([]byte, []byte) {
	iv := make([]byte, len(header))
	copy(iv, header)
	return DeriveKey(password), iv
}

// PBKDF2 is the firmware scheme: the header is a salt, and both the key and
// the IV come out of PBKDF2-HMAC-SHA256.
type PBKDF2 struct {
	Iterations int
}

func (PBKDF2) Name() string { return SchemePBKDF2 }

func (p PBKDF2) Derive(password string, header []byte) ([]byte, []byte) {
	iter := p.Iterations
	if iter <= 0 {
		iter = DefaultPBKDF2Iterations
	}
	out := pbkdf2.Key([]byte(password), header, iter, KeySize+BlockSize, sha256.New)
	return out[:KeySize], out[KeySize:]
}

// SchemeFor returns the KeyDeriver registered under name.
func SchemeFor(name string, iterations int) (KeyDeriver, error) {
	switch name {
	case "", SchemeSHA256:
		return PasswordHash{}, nil
	case SchemePBKDF2:
		if iterations <= 0 {
			return nil, fmt.Errorf("pbkdf2 iterations must be positive, got %d", iterations)
		}
		return PBKDF2{Iterations: iterations}, nil
	default:
		return nil, fmt.Errorf("unknown scheme: %q", name)
	}
}
