// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a staff member to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserView is the outward representation of a user. It deliberately has
// no credential fields and is the only user shape that crosses the HTTP
// boundary.
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Roles     []string   `json:"roles"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// NewUserView maps a user entity to its outward representation.
func NewUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		Roles:     user.Roles().Strings(),
		Active:    user.Active,
		LastLogin: user.LastLogin,
	}
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login verifies the credentials, stamps last_login, runs the
	// best-effort credential upgrade, and issues a session token. All
	// failures surface as ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
