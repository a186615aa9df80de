// Package apperr defines the API error taxonomy shared by services,
// middleware and handlers. Each error carries the HTTP status it maps to.
package apperr

import "net/http"

// Error is an API-visible error with an HTTP status code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation reports missing or malformed input.
func NewValidation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NewDuplicateEmail reports a registration attempt with an email that is
// already taken.
func NewDuplicateEmail() *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Email already registered"}
}

// NewInvalidCredentials reports a failed login. The message is identical
// for an unknown email and a wrong password so that neither can be probed.
func NewInvalidCredentials() *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Invalid credentials"}
}

// NewUnauthenticated reports a missing, malformed or expired bearer token.
func NewUnauthenticated(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NewExpenseNotFound reports an expense that does not exist or is not owned
// by the caller. The two cases are indistinguishable to prevent cross-user
// enumeration.
func NewExpenseNotFound() *Error {
	return &Error{Status: http.StatusNotFound, Message: "Expense not found"}
}
