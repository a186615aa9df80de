package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"spendtrack/internal/model"
)

// tokenTTL is the fixed validity window of issued tokens.
const tokenTTL = 7 * 24 * time.Hour

// Claims represents JWT claims carrying the user's identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey}
}

// Generate creates a signed token for the user, expiring after the fixed TTL.
func (j *JWT) Generate(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the token signature and expiry and extracts the claims.
func (j *JWT) Parse(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return model.TokenClaims{}, fmt.Errorf("token is invalid")
	}

	return model.TokenClaims{UserID: claims.UserID, Email: claims.Email}, nil
}
