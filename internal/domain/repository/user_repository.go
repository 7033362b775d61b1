// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mealbell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUsersByEmails retrieves the users matching the given emails.
	// Unknown emails are skipped, not errors.
	FindUsersByEmails(ctx context.Context, emails []string) ([]*entity.User, error)

	// FindNotifiableUsers retrieves all users whose master notification
	// switch is on.
	FindNotifiableUsers(ctx context.Context) ([]*entity.User, error)

	// UpdatePreferences persists the user's preference lists and alert flags.
	UpdatePreferences(ctx context.Context, user *entity.User) error
}
