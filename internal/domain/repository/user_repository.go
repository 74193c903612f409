// Package repository defines the persistence interfaces of the domain.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository provides access to staff accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// UpdateLastLogin stamps a successful authentication.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdatePasswordHash writes the dedicated hash column. Used by the
	// credential upgrade; the legacy column is left untouched.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error

	// UpdateLegacyPassword overwrites the legacy password column. Only
	// the credential upgrade calls this, and only to replace plaintext
	// with a hash.
	UpdateLegacyPassword(ctx context.Context, id uuid.UUID, value string) error
}
