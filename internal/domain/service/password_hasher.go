// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives and verifies salted password digests.
// This abstracts the underlying algorithm, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a fresh random salt and the keyed digest of password under it.
	Hash(password string) (hash []byte, salt []byte, err error)

	// Verify recomputes the digest of password with salt and compares it to hash.
	Verify(password string, hash, salt []byte) bool
}
