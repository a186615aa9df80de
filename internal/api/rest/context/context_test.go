package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/model"
)

func TestManager_SetAndGetClaims(t *testing.T) {
	m := NewManager()
	claims := model.TokenClaims{UserID: uuid.New(), Email: "a@x.com"}

	ctx := m.SetClaimsToContext(context.Background(), claims)

	got, ok := m.GetClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, claims, got)
}

func TestManager_GetClaims_Unset(t *testing.T) {
	m := NewManager()

	_, ok := m.GetClaimsFromContext(context.Background())
	assert.False(t, ok)
}
