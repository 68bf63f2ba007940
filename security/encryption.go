package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// ErrMalformed is returned when a sealed value cannot be opened.
var ErrMalformed = errors.New("malformed sealed value")

// Box seals and opens small values (cookie payloads) with AES-GCM.
type Box struct {
	aead cipher.AEAD
}

// NewBox derives a 32 byte key from key, padding short keys with zero bytes
// and truncating long ones.
func NewBox(key string) (*Box, error) {
	if key == "" {
		return nil, errors.New("encryption key is empty")
	}
	if len(key) < 32 {
		padding := make([]byte, 32-len(key))
		key = key + string(padding)
	}

	block, err := aes.NewCipher([]byte(key[:32]))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Box{aead: gcm}, nil
}

// Seal encrypts plaintext and returns a URL-safe string suitable for cookies.
func (b *Box) Seal(plaintext []byte) (string, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := b.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

// Open reverses Seal.
func (b *Box) Open(sealed string) ([]byte, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return nil, ErrMalformed
	}

	if len(ciphertext) < b.aead.NonceSize() {
		return nil, ErrMalformed
	}

	nonce := ciphertext[:b.aead.NonceSize()]
	ciphertext = ciphertext[b.aead.NonceSize():]

	plaintext, err := b.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrMalformed
	}
	return plaintext, nil
}
