// Package context manages authenticated claims on HTTP request contexts.
package context

import (
	"context"

	"spendtrack/internal/model"
)

// claimsKey is unexported so no other package can collide with it.
type claimsKey struct{}

// Manager stores and retrieves token claims on request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClaimsToContext returns a child context carrying the claims.
func (m *Manager) SetClaimsToContext(ctx context.Context, claims model.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext retrieves the claims set by the authentication
// middleware. The boolean reports whether the request was authenticated.
func (m *Manager) GetClaimsFromContext(ctx context.Context) (model.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(model.TokenClaims)
	return claims, ok
}
