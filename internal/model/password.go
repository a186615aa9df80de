package model

// PasswordHasher derives and verifies password hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain string, hash string) bool
}
