// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"io"

	"identity/config"
	"identity/internal/domain/service"
	"identity/internal/errors"
)

// hmacSaltSize matches the HMAC-SHA-512 block size, the default key length for the algorithm.
const hmacSaltSize = 128

// ErrEmptyPassword is returned when asked to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// hmacHasher stores HMAC-SHA-512(key=salt, message=password).
// It is a keyed hash, not a memory-hard KDF; see argon2Hasher for that.
type hmacHasher struct {
	random io.Reader
}

// NewHMACHasher is the constructor for hmacHasher.
func NewHMACHasher() service.PasswordHasher {
	return &hmacHasher{random: rand.Reader}
}

// NewPasswordHasher picks the hasher named by auth.hasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.Hasher {
	case "", config.HasherHMACSHA512:
		return NewHMACHasher(), nil
	case config.HasherArgon2id:
		return NewArgon2Hasher(), nil
	default:
		return nil, errors.Errorf("unknown password hasher %q", cfg.Auth.Hasher)
	}
}

// Hash generates a new salt and returns the HMAC-SHA-512 digest of password keyed by it.
func (h *hmacHasher) Hash(password string) ([]byte, []byte, error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}

	salt := make([]byte, hmacSaltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate salt")
	}

	return computeHMAC(password, salt), salt, nil
}

// Verify compares the full digest in constant time.
func (h *hmacHasher) Verify(password string, hash, salt []byte) bool {
	if len(salt) == 0 || len(hash) != sha512.Size {
		return false
	}

	return hmac.Equal(computeHMAC(password, salt), hash)
}

func computeHMAC(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}
