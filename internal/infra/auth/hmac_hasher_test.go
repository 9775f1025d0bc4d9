package auth

import (
	"bytes"
	"crypto/sha512"
	"errors"
	"testing"

	"identity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACHasher_Hash(t *testing.T) {
	hasher := NewHMACHasher()

	hash, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.Len(t, hash, sha512.Size)
	assert.Len(t, salt, hmacSaltSize)

	assert.True(t, hasher.Verify("Password123!", hash, salt))
}

func TestHMACHasher_HashIsSaltedPerCall(t *testing.T) {
	hasher := NewHMACHasher()

	hash1, salt1, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	hash2, salt2, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestHMACHasher_Verify(t *testing.T) {
	hasher := NewHMACHasher()
	hash, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     []byte
		salt     []byte
		want     bool
	}{
		{name: "correct password", password: "Password123!", hash: hash, salt: salt, want: true},
		{name: "wrong password", password: "WrongPassword123!", hash: hash, salt: salt, want: false},
		{name: "case differs", password: "password123!", hash: hash, salt: salt, want: false},
		{name: "empty password", password: "", hash: hash, salt: salt, want: false},
		{name: "truncated hash", password: "Password123!", hash: hash[:32], salt: salt, want: false},
		{name: "empty hash", password: "Password123!", hash: nil, salt: salt, want: false},
		{name: "empty salt", password: "Password123!", hash: hash, salt: nil, want: false},
		{name: "other salt", password: "Password123!", hash: hash, salt: bytes.Repeat([]byte{7}, hmacSaltSize), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Verify(tt.password, tt.hash, tt.salt))
		})
	}
}

func TestHMACHasher_MatchesKeyedDigest(t *testing.T) {
	// A zero key of the reference length must reproduce the same digest on every call.
	salt := make([]byte, 64)
	digest := computeHMAC("Password123!", salt)

	assert.True(t, NewHMACHasher().Verify("Password123!", digest, salt))
	assert.Equal(t, digest, computeHMAC("Password123!", salt))
}

func TestHMACHasher_RejectsEmptyPassword(t *testing.T) {
	_, _, err := NewHMACHasher().Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestHMACHasher_SaltFailure(t *testing.T) {
	hasher := &hmacHasher{random: failingReader{}}

	_, _, err := hasher.Hash("Password123!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate salt")
}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, salt, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.Len(t, hash, argon2KeyLen)
	assert.Len(t, salt, argon2SaltLen)

	assert.True(t, hasher.Verify("Password123!", hash, salt))
	assert.False(t, hasher.Verify("Password123?", hash, salt))
	assert.False(t, hasher.Verify("Password123!", hash[:10], salt))

	_, _, err = hasher.Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestNewPasswordHasher(t *testing.T) {
	cfg := &config.Config{}

	hasher, err := NewPasswordHasher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &hmacHasher{}, hasher)

	cfg.Auth.Hasher = config.HasherArgon2id
	hasher, err = NewPasswordHasher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &argon2Hasher{}, hasher)

	cfg.Auth.Hasher = "md5"
	_, err = NewPasswordHasher(cfg)
	assert.Error(t, err)
}
