package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}

// CategoryCache is a read-through cache over category lookups. All methods
// are best-effort: a miss or backend failure falls through to the store.
type CategoryCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, bool)
	Set(ctx context.Context, category *domain.Category)
	GetList(ctx context.Context) ([]*domain.Category, bool)
	SetList(ctx context.Context, categories []*domain.Category)
	// Invalidate drops the cached entry for id and the cached list.
	Invalidate(ctx context.Context, id uuid.UUID)
}
