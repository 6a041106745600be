package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// ComplaintListFilter carries optional query parameters for listing
// complaints.
type ComplaintListFilter struct {
	UserID     *uuid.UUID
	CategoryID *uuid.UUID
	AgencyID   *uuid.UUID
	Status     *domain.ComplaintStatus
	Type       *domain.ComplaintType
}

// ComplaintRepository defines persistence operations for complaints. Reads
// resolve the submitter, category, and agency display names.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	List(ctx context.Context, filter ComplaintListFilter) ([]*domain.Complaint, error)
	Update(ctx context.Context, complaint *domain.Complaint) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByCategoryID guards category deletion.
	ExistsByCategoryID(ctx context.Context, categoryID uuid.UUID) (bool, error)
}
