package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"spendtrack/internal/apperr"
	"spendtrack/internal/logger"
	"spendtrack/internal/model"
)

// Expense implements expense listing, creation and removal scoped to the
// authenticated user.
type Expense struct {
	expenseStore model.ExpenseStore
	logger       *logger.Logger
}

func NewExpense(expenseStore model.ExpenseStore, logger *logger.Logger) *Expense {
	return &Expense{
		expenseStore: expenseStore,
		logger:       logger,
	}
}

// List returns the caller's expenses in storage order.
func (s *Expense) List(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	expenses, err := s.expenseStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses by user id: %w", err)
	}

	if expenses == nil {
		// Serialize as [], not null.
		expenses = []model.Expense{}
	}

	return expenses, nil
}

// Create stores a new expense. Category defaults to "General" and date to
// the current time when omitted.
func (s *Expense) Create(ctx context.Context, params model.CreateExpenseParams) (model.Expense, error) {
	s.logger.Debug("Expense service: creating expense",
		"user_id", params.UserID,
		"title", params.Title)

	if params.Title == "" || params.Amount == nil {
		return model.Expense{}, apperr.NewValidation("title and amount required")
	}

	expense := model.Expense{
		ID:       uuid.New(),
		UserID:   params.UserID,
		Title:    params.Title,
		Amount:   *params.Amount,
		Category: params.Category,
		Date:     time.Now(),
	}
	if expense.Category == "" {
		expense.Category = model.DefaultCategory
	}
	if params.Date != nil {
		expense.Date = *params.Date
	}

	expense, err := s.expenseStore.Create(ctx, expense)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	s.logger.Info("Expense service: expense created",
		"user_id", expense.UserID,
		"expense_id", expense.ID)

	return expense, nil
}

// Remove deletes the caller's expense and returns it. An expense that does
// not exist or belongs to another user yields the same not-found error.
func (s *Expense) Remove(ctx context.Context, userID uuid.UUID, expenseID uuid.UUID) (model.Expense, error) {
	removed, err := s.expenseStore.Delete(ctx, expenseID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Expense{}, apperr.NewExpenseNotFound()
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to delete expense: %w", err)
	}

	s.logger.Info("Expense service: expense removed",
		"user_id", userID,
		"expense_id", removed.ID)

	return removed, nil
}
