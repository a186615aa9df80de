package jsonfile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/model"
)

func makeUser(email string) model.User {
	return model.User{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t))

	user := makeUser("a@x.com")
	created, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user, created)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user, byEmail)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t))

	_, err := repo.GetByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t))

	first := makeUser("a@x.com")
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)

	_, err = repo.Create(ctx, makeUser("a@x.com"))
	require.ErrorIs(t, err, model.ErrDuplicate)

	// The collection still holds exactly the first user.
	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t))

	_, err := repo.Create(ctx, makeUser("a@x.com"))
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "A@X.com")
	require.ErrorIs(t, err, model.ErrNotFound)
}
