// Package crypto encrypts short text payloads with a password.
//
// Envelope format, Base64 (standard alphabet, padded) encoded:
//
//	header (16 bytes) || AES-256-CBC ciphertext (PKCS#7, 16*k bytes, k >= 1)
//
// Key derivation schemes:
//   - sha256 (default): key = SHA-256(password), header is the random IV
//   - pbkdf2: header is a random salt, key and IV come from
//     PBKDF2-HMAC-SHA256(password, salt, iterations, 48)
//
// There is no MAC. Decrypting with the wrong password or a tampered envelope
// fails with ErrPadding or ErrEncoding, or yields different text; the two
// cases cannot be told apart.
package crypto
