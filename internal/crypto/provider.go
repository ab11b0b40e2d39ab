package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	KeySize   = 32 // AES-256
	BlockSize = 16 // AES block, also the IV and envelope header size
)

const (
	opEncrypt = "encrypt"
	opDecrypt = "decrypt"
)

// Cipher encrypts and decrypts text with a password. It holds no mutable
// state; one Cipher may be shared between goroutines as long as its random
// source is safe for concurrent use.
type Cipher struct {
	random    io.Reader
	deriver   KeyDeriver
	normalize func(string) string
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithRandom sets the source of envelope headers. Defaults to crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(c *Cipher) {
		c.random = r
	}
}

// WithKeyDeriver sets the key derivation scheme. Defaults to PasswordHash.
func WithKeyDeriver(d KeyDeriver) Option {
	return func(c *Cipher) {
		c.deriver = d
	}
}

// WithPasswordNormalizer rewrites the password before derivation, e.g.
// norm.NFC.String.
func WithPasswordNormalizer(fn func(string) string) Option {
	return func(c *Cipher) {
		c.normalize = fn
	}
}

// New creates a Cipher.
func New(opts ...Option) *Cipher {
	c := &Cipher{
		random:  rand.Reader,
		deriver: PasswordHash{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scheme returns the name of the key derivation scheme in use.
func (c *Cipher) Scheme() string {
	return c.deriver.Name()
}

func (c *Cipher) derive(password string, header []byte) ([]byte, []byte) {
	if c.normalize != nil {
		password = c.normalize(password)
	}
	return c.deriver.Derive(password, header)
}

// Encrypt pads plaintext, encrypts it with AES-256-CBC under a fresh header
// and returns base64(header || ciphertext).
func (c *Cipher) Encrypt(plaintext, password string) (string, error) {
	if !utf8.ValidString(plaintext) {
		return "", newError(opEncrypt, KindEncoding, "plaintext is not valid UTF-8")
	}

	header := make([]byte, BlockSize)
	if _, err := io.ReadFull(c.random, header); err != nil {
		return "", &Error{Kind: KindRandomSource, Op: opEncrypt, Err: fmt.Errorf("generate IV: %w", err)}
	}

	key, iv := c.derive(password, header)
	defer ClearBytes(key)

	ciphertext, err := encryptCBC(Pad([]byte(plaintext), BlockSize), key, iv)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opEncrypt, err)
	}

	envelope := make([]byte, 0, BlockSize+len(ciphertext))
	envelope = append(envelope, header...)
	envelope = append(envelope, ciphertext...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt decodes base64(header || ciphertext), decrypts it and strips the
// padding. There is no integrity check: a wrong password shows up as a
// padding or encoding error, or, rarely, as different text.
func (c *Cipher) Decrypt(encoded, password string) (string, error) {
	envelope, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", newError(opDecrypt, KindFormat, "base64 decode failed: %v", err)
	}
	if len(envelope) < BlockSize {
		return "", newError(opDecrypt, KindFormat, "envelope too short: %d bytes", len(envelope))
	}

	header, ciphertext := envelope[:BlockSize], envelope[BlockSize:]
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return "", newError(opDecrypt, KindFormat, "ciphertext length %d is not a positive multiple of %d", len(ciphertext), BlockSize)
	}

	key, iv := c.derive(password, header)
	defer ClearBytes(key)

	padded, err := decryptCBC(ciphertext, key, iv)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opDecrypt, err)
	}

	plain, err := Unpad(padded, BlockSize)
	if err != nil {
		return "", &Error{Kind: KindPadding, Op: opDecrypt, Err: err}
	}

	if !utf8.Valid(plain) {
		return "", newError(opDecrypt, KindEncoding, "decrypted bytes are not valid UTF-8")
	}

	return string(plain), nil
}

var defaultCipher = New()

// Encrypt uses a Cipher with the default scheme and crypto/rand.
func Encrypt(plaintext, password string) (string, error) {
	return defaultCipher.Encrypt(plaintext, password)
}

// Decrypt uses a Cipher with the default scheme.
func Decrypt(encoded, password string) (string, error) {
	return defaultCipher.Decrypt(encoded, password)
}

// ClearBytes zeroes b.
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
