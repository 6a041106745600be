package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/civicworks/complaint-system/internal/pkg/metrics"
	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
	"github.com/civicworks/complaint-system/internal/pkg/messages"
)

// ComplaintService implements complaint intake and tracking.
type ComplaintService struct {
	complaints ports.ComplaintRepository
	users      ports.UserRepository
	agencies   ports.AgencyRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewComplaintService(
	complaints ports.ComplaintRepository,
	users ports.UserRepository,
	agencies ports.AgencyRepository,
	categories ports.CategoryRepository,
	logger zerolog.Logger,
) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		users:      users,
		agencies:   agencies,
		categories: categories,
		logger:     logger,
	}
}

// Create validates every reference and the report date before any write, so
// a bad submitter id never persists a row. Status always starts PENDING.
func (s *ComplaintService) Create(ctx context.Context, input ports.ComplaintInput) (*domain.Complaint, error) {
	if err := s.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	complaint := &domain.Complaint{
		Type:          input.Type,
		Visibility:    input.Visibility,
		Title:         input.Title,
		Description:   input.Description,
		Date:          input.Date,
		Location:      input.Location,
		AttachmentURL: input.AttachmentURL,
		Status:        domain.StatusPending,
		Aspiration:    input.Aspiration,
		UserID:        input.UserID,
		CategoryID:    input.CategoryID,
		AgencyID:      input.AgencyID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	metrics.ComplaintsCreatedTotal.WithLabelValues(string(complaint.Type)).Inc()
	s.logger.Info().Str("complaint_id", complaint.ID.String()).Str("user_id", input.UserID.String()).Msg("complaint created")
	return s.complaints.FindByID(ctx, complaint.ID)
}

func (s *ComplaintService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	return s.complaints.FindByID(ctx, id)
}

func (s *ComplaintService) List(ctx context.Context, filter ports.ComplaintListFilter) ([]*domain.Complaint, error) {
	return s.complaints.List(ctx, filter)
}

// Update overwrites the report fields and re-validates references. The
// submitter is immutable; a status change is honoured when given.
func (s *ComplaintService) Update(ctx context.Context, id uuid.UUID, input ports.ComplaintInput) (*domain.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.UserID = complaint.UserID
	if err := s.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	complaint.Type = input.Type
	complaint.Visibility = input.Visibility
	complaint.Title = input.Title
	complaint.Description = input.Description
	complaint.Date = input.Date
	complaint.Location = input.Location
	complaint.AttachmentURL = input.AttachmentURL
	complaint.Aspiration = input.Aspiration
	complaint.CategoryID = input.CategoryID
	complaint.AgencyID = input.AgencyID
	if input.Status != "" {
		complaint.Status = input.Status
	}
	complaint.UpdatedAt = time.Now().UTC()

	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info().Str("complaint_id", id.String()).Msg("complaint updated")
	return s.complaints.FindByID(ctx, id)
}

func (s *ComplaintService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.complaints.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.complaints.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("complaint_id", id.String()).Msg("complaint deleted")
	return nil
}

// validateReferences accumulates every failing reference and the date check
// into one field-scoped validation error.
func (s *ComplaintService) validateReferences(ctx context.Context, input ports.ComplaintInput) error {
	verr := domain.NewValidationError()

	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) {
			return err
		}
		verr.Add("userId", messages.Get("user.notfound.id", input.UserID))
	}

	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) {
			return err
		}
		verr.Add("categoryId", messages.Get("category.notfound.id", input.CategoryID))
	}

	if input.AgencyID != nil {
		if _, err := s.agencies.FindByID(ctx, *input.AgencyID); err != nil {
			var nf *domain.NotFoundError
			if !errors.As(err, &nf) {
				return err
			}
			verr.Add("agencyId", messages.Get("agency.notfound.id", *input.AgencyID))
		}
	}

	if input.Date.After(time.Now().UTC()) {
		verr.Add("date", messages.Get("complaint.date.future"))
	}

	if verr.HasErrors() {
		s.logger.Warn().Interface("errors", verr.Fields).Msg("complaint rejected")
		return verr
	}
	return nil
}
