// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"vetclinic/internal/domain/service"
	"vetclinic/internal/errors"
)

const (
	pbkdf2Iterations = 100_000
	pbkdf2SaltSize   = 16
	pbkdf2KeySize    = 32
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-HMAC-SHA256 with a per-password random salt.
type pbkdf2Hasher struct{}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{}
}

// Hash derives a key from the password with a fresh 16-byte salt.
// Both salt and derived key are returned hex-encoded for storage.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	salt := make([]byte, pbkdf2SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(err, "failed to generate password salt")
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeySize, sha256.New)

	return hex.EncodeToString(salt), hex.EncodeToString(key), nil
}

// Check re-derives the key with the stored salt and compares in constant time.
func (h *pbkdf2Hasher) Check(password, saltHex, hashHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(expected), sha256.New)

	return hmac.Equal(key, expected)
}
