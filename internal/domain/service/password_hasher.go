// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls on
	// the same plaintext yield different stored values.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. A mismatch is
	// (false, nil); a non-nil error means the stored hash itself is
	// malformed and signals an integrity problem, not a wrong password.
	Check(password, hash string) (bool, error)
}
