// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Account is a stored identity. The store assigns ID on insert; the core never mutates an
// account after that. PasswordHash and PasswordSalt are always set together.
type Account struct {
	ID           int64     // Store-assigned identifier, immutable once set.
	FirstName    string    // Given name as entered at registration.
	LastName     string    // Family name as entered at registration.
	Email        string    // Normalized email, the case-insensitive unique key.
	PasswordHash []byte    // Fixed-length keyed digest of the password.
	PasswordSalt []byte    // Random per-account key used to compute PasswordHash.
	CreatedAt    time.Time // Set by the store on insert.
}

// HasCredentials reports whether both halves of the stored credential are present.
func (a *Account) HasCredentials() bool {
	return len(a.PasswordHash) > 0 && len(a.PasswordSalt) > 0
}

// LowerEmail is the registration normalization: case folding only.
func LowerEmail(email string) string {
	return strings.ToLower(email)
}

// NormalizeEmail is the lookup normalization used by login and existence checks:
// surrounding whitespace is trimmed before case folding.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
