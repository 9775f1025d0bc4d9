// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted on test cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) ([]byte, []byte, error) {
	args := m.Called(password)

	var hash, salt []byte
	if v := args.Get(0); v != nil {
		hash = v.([]byte)
	}
	if v := args.Get(1); v != nil {
		salt = v.([]byte)
	}

	return hash, salt, args.Error(2)
}

func (m *MockPasswordHasher) Verify(password string, hash, salt []byte) bool {
	args := m.Called(password, hash, salt)

	return args.Bool(0)
}
