package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// encryptCBC encrypts an already padded buffer with AES-CBC.
func encryptCBC(padded, key, iv []byte) ([]byte, error) {
	if err := ValidateKeySize(key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

// decryptCBC decrypts whole blocks with AES-CBC; padding is left in place.
func decryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	if err := ValidateKeySize(key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return out, nil
}

// ValidateKeySize checks if the key is the correct size.
func ValidateKeySize(key []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("invalid key size: expected %d, got %d", KeySize, len(key))
	}
	return nil
}
