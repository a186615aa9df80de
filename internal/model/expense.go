package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to expenses created without a category.
const DefaultCategory = "General"

// ExpenseStore defines persistence operations for expenses.
type ExpenseStore interface {
	Create(ctx context.Context, expense Expense) (Expense, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Expense, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) (Expense, error)
}

// Expense represents a stored expense entry owned by a single user.
type Expense struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Title    string    `json:"title"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// CreateExpenseParams contains parameters to create an expense.
// Amount and Date are pointers so that absent values can be told apart
// from zero values and defaulted by the service.
type CreateExpenseParams struct {
	UserID   uuid.UUID
	Title    string
	Amount   *float64
	Category string
	Date     *time.Time
}
