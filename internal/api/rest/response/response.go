// Package response writes JSON API responses and maps errors to HTTP
// status codes.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"spendtrack/internal/apperr"
	"spendtrack/internal/model"
)

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error maps err to its HTTP status and writes a {"message": ...} body.
// Anything outside the API taxonomy is reported as an internal error
// without leaking its detail.
func Error(w http.ResponseWriter, err error) {
	var apiErr *apperr.Error
	if errors.As(err, &apiErr) {
		JSON(w, apiErr.Status, messageBody{Message: apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		JSON(w, http.StatusNotFound, messageBody{Message: "not found"})
		return
	}

	JSON(w, http.StatusInternalServerError, messageBody{Message: "internal server error"})
}
