package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Find methods return *domain.NotFoundError when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	// List returns all users, optionally filtered by role.
	List(ctx context.Context, role *domain.Role) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByUsername and ExistsByEmail power uniqueness pre-checks.
	// A non-nil excludeID ignores that row, so updates don't collide with
	// themselves.
	ExistsByUsername(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
}
