package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user account. The password hash is persisted
// under the "password" key, matching the layout of existing data files.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserView is the sanitized user representation sent to clients.
// It never carries the password hash.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// View returns the sanitized representation of the user.
func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterParams contains parameters to register a new user.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams contains credentials presented at login.
type LoginParams struct {
	Email    string
	Password string
}

// AuthResult is returned by successful registration and login.
type AuthResult struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}
