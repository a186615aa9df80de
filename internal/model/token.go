package model

import "github.com/google/uuid"

// TokenClaims identifies the authenticated user carried by a token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenManager issues and validates signed identity tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, email string) (string, error)
	Parse(token string) (TokenClaims, error)
}
