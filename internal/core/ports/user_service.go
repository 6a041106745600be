package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// UserInput carries user fields for create and update. On update, blank
// fields leave the stored value untouched.
type UserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UserService defines admin-facing user management.
type UserService interface {
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, role *domain.Role) ([]*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
