package crypto

// Provider defines the interface for password-based text encryption.
type Provider interface {
	// Encrypt returns base64(header || ciphertext) for plaintext.
	Encrypt(plaintext, password string) (string, error)

	// Decrypt reverses Encrypt.
	Decrypt(encoded, password string) (string, error)
}

// KeyDeriver turns a password and the 16-byte envelope header into the AES
// key and the CBC IV for one message.
type KeyDeriver interface {
	Name() string
	Derive(password string, header []byte) (key, iv []byte)
}
