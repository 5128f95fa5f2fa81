// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying derivation (PBKDF2), keeping the domain pure.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password. Both values are
	// hex-encoded for storage.
	Hash(password string) (salt string, hash string, err error)

	// Check reports whether the plaintext password matches the stored
	// salt/hash pair.
	Check(password, salt, hash string) bool
}
