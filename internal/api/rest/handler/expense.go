package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"spendtrack/internal/api/rest/response"
	"spendtrack/internal/apperr"
	"spendtrack/internal/logger"
	"spendtrack/internal/model"
)

// ExpenseService exposes the expense operations needed by the HTTP layer.
type ExpenseService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Expense, error)
	Create(ctx context.Context, params model.CreateExpenseParams) (model.Expense, error)
	Remove(ctx context.Context, userID, expenseID uuid.UUID) (model.Expense, error)
}

// Expense handles expense requests for the authenticated user.
type Expense struct {
	service        ExpenseService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewExpense creates a new Expense handler.
func NewExpense(service ExpenseService, contextManager model.ContextManager, logger *logger.Logger) *Expense {
	return &Expense{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createExpenseRequest struct {
	Title    string          `json:"title"`
	Amount   json.RawMessage `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

type deleteExpenseResponse struct {
	Message string        `json:"message"`
	Removed model.Expense `json:"removed"`
}

// parseAmount accepts a JSON number or a numeric string.
func parseAmount(raw json.RawMessage) (*float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = []byte(s)
	}

	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil, apperr.NewValidation("amount must be a number")
	}
	return &v, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, apperr.NewValidation("invalid date")
}

// List returns all expenses of the authenticated user.
func (h *Expense) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, apperr.NewUnauthenticated("Invalid token"))
		return
	}

	expenses, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list expenses failed", "error", err.Error())
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, expenses)
}

// Create records a new expense for the authenticated user.
func (h *Expense) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, apperr.NewUnauthenticated("Invalid token"))
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, apperr.NewValidation("invalid request body"))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		response.Error(w, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(w, err)
		return
	}

	expense, err := h.service.Create(r.Context(), model.CreateExpenseParams{
		UserID:   claims.UserID,
		Title:    req.Title,
		Amount:   amount,
		Category: req.Category,
		Date:     date,
	})
	if err != nil {
		h.logger.Debug("create expense failed", "error", err.Error())
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, expense)
}

// Delete removes one of the authenticated user's expenses by id.
func (h *Expense) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, apperr.NewUnauthenticated("Invalid token"))
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, apperr.NewExpenseNotFound())
		return
	}

	removed, err := h.service.Remove(r.Context(), claims.UserID, id)
	if err != nil {
		h.logger.Debug("delete expense failed", "error", err.Error())
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, deleteExpenseResponse{
		Message: "Deleted",
		Removed: removed,
	})
}
