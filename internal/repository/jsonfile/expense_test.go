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

func makeExpense(userID uuid.UUID, title string) model.Expense {
	return model.Expense{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    title,
		Amount:   3.5,
		Category: "General",
		Date:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestExpenseRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestStore(t))
	userID := uuid.New()

	first := makeExpense(userID, "Coffee")
	second := makeExpense(userID, "Lunch")
	for _, e := range []model.Expense{first, second} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	// Insertion order is preserved.
	require.Equal(t, []model.Expense{first, second}, got)
}

func TestExpenseRepository_List_FiltersByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestStore(t))
	userA := uuid.New()
	userB := uuid.New()

	mine := makeExpense(userA, "Coffee")
	_, err := repo.Create(ctx, mine)
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeExpense(userB, "Cinema"))
	require.NoError(t, err)

	got, err := repo.GetByUserID(ctx, userA)
	require.NoError(t, err)
	require.Equal(t, []model.Expense{mine}, got)
}

func TestExpenseRepository_Delete_Own(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestStore(t))
	userID := uuid.New()

	keep := makeExpense(userID, "Coffee")
	drop := makeExpense(userID, "Lunch")
	for _, e := range []model.Expense{keep, drop} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	removed, err := repo.Delete(ctx, drop.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, drop, removed)

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, []model.Expense{keep}, got)
}

func TestExpenseRepository_Delete_OtherUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestStore(t))
	owner := uuid.New()
	intruder := uuid.New()

	target := makeExpense(owner, "Coffee")
	_, err := repo.Create(ctx, target)
	require.NoError(t, err)

	_, err = repo.Delete(ctx, target.ID, intruder)
	require.ErrorIs(t, err, model.ErrNotFound)

	// The record is intact for its owner.
	got, err := repo.GetByUserID(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, []model.Expense{target}, got)
}

func TestExpenseRepository_Delete_Missing(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(newTestStore(t))

	_, err := repo.Delete(ctx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}
