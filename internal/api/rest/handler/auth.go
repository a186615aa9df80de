package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"spendtrack/internal/api/rest/response"
	"spendtrack/internal/apperr"
	"spendtrack/internal/logger"
	"spendtrack/internal/model"
)

// AuthService exposes the account operations needed by the HTTP layer.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error)
	Login(ctx context.Context, params model.LoginParams) (model.AuthResult, error)
}

// Auth handles registration and login requests.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		service: service,
		logger:  logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns it with a fresh token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, apperr.NewValidation("invalid request body"))
		return
	}

	result, err := h.service.Register(r.Context(), model.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Debug("register failed", "error", err.Error())
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Login checks credentials and returns the account with a fresh token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, apperr.NewValidation("invalid request body"))
		return
	}

	result, err := h.service.Login(r.Context(), model.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Debug("login failed", "error", err.Error())
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
