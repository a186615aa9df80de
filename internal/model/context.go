package model

import "context"

// ContextManager stores and retrieves authenticated claims on request contexts.
type ContextManager interface {
	SetClaimsToContext(ctx context.Context, claims TokenClaims) context.Context
	GetClaimsFromContext(ctx context.Context) (TokenClaims, bool)
}
