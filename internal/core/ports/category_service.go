package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// CategoryInput carries category fields for create and update.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryService defines category management. Delete is guarded by a
// referential check against complaints.
type CategoryService interface {
	Create(ctx context.Context, input CategoryInput) (*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
