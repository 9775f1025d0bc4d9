package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"io"

	"identity/internal/domain/service"
	"identity/internal/errors"

	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters. The key length matches the HMAC digest
// so both hashers produce the same column shapes.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2SaltLen = 16
	argon2KeyLen  = 64
)

// argon2Hasher is the memory-hard alternative to hmacHasher behind the same interface.
type argon2Hasher struct {
	random io.Reader
}

// NewArgon2Hasher is the constructor for argon2Hasher.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{random: rand.Reader}
}

func (h *argon2Hasher) Hash(password string) ([]byte, []byte, error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate salt")
	}

	return argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen), salt, nil
}

func (h *argon2Hasher) Verify(password string, hash, salt []byte) bool {
	if len(salt) == 0 || len(hash) != argon2KeyLen {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return subtle.ConstantTimeCompare(computed, hash) == 1
}
