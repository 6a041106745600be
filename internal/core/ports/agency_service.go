package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// AgencyInput carries agency fields plus the nested owned-user fields.
type AgencyInput struct {
	Name    string
	Address string
	Phone   string
	User    UserInput
}

// AgencyService defines agency management. Create mints the owned AGENCY
// user in the same unit of work; Delete removes both records atomically.
type AgencyService interface {
	Create(ctx context.Context, input AgencyInput) (*domain.Agency, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error)
	List(ctx context.Context) ([]*domain.Agency, error)
	Update(ctx context.Context, id uuid.UUID, input AgencyInput) (*domain.Agency, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
