package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// ComplaintInput carries complaint fields for create and update. Submitter,
// category, and agency references are validated for existence before any
// write. Status is honoured on update only; creation always starts PENDING.
type ComplaintInput struct {
	Type          domain.ComplaintType
	Visibility    domain.Visibility
	Title         string
	Description   string
	Date          time.Time
	Location      string
	AttachmentURL string
	Aspiration    string
	Status        domain.ComplaintStatus

	UserID     uuid.UUID
	CategoryID uuid.UUID
	AgencyID   *uuid.UUID
}

// ComplaintService defines complaint intake and tracking.
type ComplaintService interface {
	Create(ctx context.Context, input ComplaintInput) (*domain.Complaint, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	List(ctx context.Context, filter ComplaintListFilter) ([]*domain.Complaint, error)
	Update(ctx context.Context, id uuid.UUID, input ComplaintInput) (*domain.Complaint, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
