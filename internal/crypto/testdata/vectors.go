package testdata

// TestVector is a known-answer case with a pinned 16-byte header.
type TestVector struct {
	Name      string
	Scheme    string
	Password  string
	Header    string // Hex
	Key       string // Hex, SHA-256 of Password for the sha256 scheme
	Plaintext string
	Encoded   string // Base64 envelope
}

// Header used by every vector: 00 01 02 ... 0f.
const Header = "000102030405060708090a0b0c0d0e0f"

// Vectors were produced with OpenSSL (aes-256-cbc, PKCS#7) and Python's
// hashlib.pbkdf2_hmac.
var Vectors = []TestVector{
	{
		Name:      "Short ASCII",
		Scheme:    "sha256",
		Password:  "secret",
		Header:    Header,
		Key:       "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		Plaintext: "hello world",
		Encoded:   "AAECAwQFBgcICQoLDA0OD2AhZe5WNIj9nDLpIW9FeJc=",
	},
	{
		Name:      "Empty plaintext",
		Scheme:    "sha256",
		Password:  "secret",
		Header:    Header,
		Key:       "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		Plaintext: "",
		Encoded:   "AAECAwQFBgcICQoLDA0ODwetIDkE55pUYN+UqLzAxKs=",
	},
	{
		Name:      "Block aligned",
		Scheme:    "sha256",
		Password:  "secret",
		Header:    Header,
		Key:       "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		Plaintext: "0123456789abcdef",
		Encoded:   "AAECAwQFBgcICQoLDA0OD4QUeiEy0akcCxpAoTNQsyicmFZTIj2W9wtsP8l5ZESR",
	},
	{
		Name:      "Unicode content",
		Scheme:    "sha256",
		Password:  "secret",
		Header:    Header,
		Key:       "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		Plaintext: "Hello, 世界! 🌍",
		Encoded:   "AAECAwQFBgcICQoLDA0OD8Hjgk76zssd2ixDcGDZPYi5sQdl2/Boe+bj9/3Lg1OV",
	},
	{
		Name:      "Firmware PBKDF2",
		Scheme:    "pbkdf2",
		Password:  "secret",
		Header:    Header,
		Key:       "4efb2bbb6d2eb58ea8deaed54417ae2fd87fd50a8a8568709363da60d4560606",
		Plaintext: "hello world",
		Encoded:   "AAECAwQFBgcICQoLDA0OD7x2JVRNcNIM5b/nFGtNonE=",
	},
}

// EmptyPasswordKey is SHA-256 of the empty string.
const EmptyPasswordKey = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
