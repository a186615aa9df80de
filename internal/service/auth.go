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

// Auth implements account registration and login.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a new user account and issues a token for it.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: registering user",
		"email", params.Email)

	if params.Name == "" || params.Email == "" || params.Password == "" {
		return model.AuthResult{}, apperr.NewValidation("Missing fields")
	}

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: email already registered",
			"email", params.Email)
		return model.AuthResult{}, apperr.NewDuplicateEmail()
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	user, err = a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrDuplicate) {
		// Lost the race to a concurrent registration for the same email.
		return model.AuthResult{}, apperr.NewDuplicateEmail()
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", user.Email,
		"user_id", user.ID)

	return model.AuthResult{User: user.View(), Token: token}, nil
}

// Login verifies the credentials and issues a fresh token. An unknown email
// and a wrong password produce the same error.
func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.AuthResult, error) {
	a.logger.Debug("Auth service: logging in user",
		"email", params.Email)

	if params.Email == "" || params.Password == "" {
		return model.AuthResult{}, apperr.NewValidation("Missing fields")
	}

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, apperr.NewInvalidCredentials()
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(params.Password, user.PasswordHash) {
		return model.AuthResult{}, apperr.NewInvalidCredentials()
	}

	token, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"email", user.Email,
		"user_id", user.ID)

	return model.AuthResult{User: user.View(), Token: token}, nil
}
