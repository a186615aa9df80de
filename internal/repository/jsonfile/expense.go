package jsonfile

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"spendtrack/internal/model"
)

const expensesCollection = "expenses"

var _ model.ExpenseStore = (*ExpenseRepository)(nil)

// ExpenseRepository persists expenses in the expenses collection file.
type ExpenseRepository struct {
	store *Store
}

func NewExpenseRepository(store *Store) *ExpenseRepository {
	return &ExpenseRepository{
		store: store,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense model.Expense) (model.Expense, error) {
	lock := r.store.Lock(expensesCollection)
	lock.Lock()
	defer lock.Unlock()

	expenses := load[model.Expense](r.store, expensesCollection)
	expenses = append(expenses, expense)
	if err := save(r.store, expensesCollection, expenses); err != nil {
		return model.Expense{}, err
	}

	return expense, nil
}

// GetByUserID returns the caller's expenses in storage order.
func (r *ExpenseRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	lock := r.store.Lock(expensesCollection)
	lock.Lock()
	defer lock.Unlock()

	var owned []model.Expense
	for _, expense := range load[model.Expense](r.store, expensesCollection) {
		if expense.UserID == userID {
			owned = append(owned, expense)
		}
	}

	return owned, nil
}

// Delete removes the expense matching both id and owner and returns it.
// An expense owned by another user is reported as model.ErrNotFound,
// identically to a missing one.
func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (model.Expense, error) {
	lock := r.store.Lock(expensesCollection)
	lock.Lock()
	defer lock.Unlock()

	expenses := load[model.Expense](r.store, expensesCollection)
	idx := slices.IndexFunc(expenses, func(e model.Expense) bool {
		return e.ID == id && e.UserID == userID
	})
	if idx < 0 {
		return model.Expense{}, model.ErrNotFound
	}

	removed := expenses[idx]
	expenses = slices.Delete(expenses, idx, idx+1)
	if err := save(r.store, expensesCollection, expenses); err != nil {
		return model.Expense{}, err
	}

	return removed, nil
}
