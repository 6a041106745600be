package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// AgencyRepository defines persistence operations for agencies. The owned
// user row is managed through UserRepository; both writes run inside the
// same transactional unit of work driven by the service layer.
type AgencyRepository interface {
	Create(ctx context.Context, agency *domain.Agency) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error)
	// FindByUserID resolves the agency owning the given user account, if any.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Agency, error)
	List(ctx context.Context) ([]*domain.Agency, error)
	Update(ctx context.Context, agency *domain.Agency) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByPhone(ctx context.Context, phone string, excludeID *uuid.UUID) (bool, error)
}
