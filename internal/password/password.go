// Package password implements credential hashing backed by bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt derives and verifies password hashes with a fixed work factor.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the library default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// Hash derives a salted bcrypt hash from the plaintext password.
func (b *Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether plain matches the stored hash.
func (b *Bcrypt) Verify(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
