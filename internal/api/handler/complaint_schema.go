package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
)

type complaintRequest struct {
	Type          string     `json:"type" validate:"required,oneof=COMPLAINT ASPIRATION"`
	Visibility    string     `json:"visibility" validate:"required,oneof=PUBLIC PRIVATE"`
	Title         string     `json:"title" validate:"omitempty,max=255"`
	Description   string     `json:"description" validate:"omitempty,max=4000"`
	Date          time.Time  `json:"date" validate:"required"`
	Location      string     `json:"location" validate:"required,max=255"`
	AttachmentURL string     `json:"attachmentUrl" validate:"omitempty,max=1024"`
	Aspiration    string     `json:"aspiration" validate:"omitempty,max=4000"`
	UserID        uuid.UUID  `json:"userId" validate:"required"`
	CategoryID    uuid.UUID  `json:"categoryId" validate:"required"`
	AgencyID      *uuid.UUID `json:"agencyId" validate:"omitempty"`
}

type complaintUpdateRequest struct {
	complaintRequest
	Status string `json:"status" validate:"omitempty,oneof=PENDING PROCESS COMPLETED REJECTED"`
}

func (r complaintRequest) toInput() ports.ComplaintInput {
	return ports.ComplaintInput{
		Type:          domain.ComplaintType(r.Type),
		Visibility:    domain.Visibility(r.Visibility),
		Title:         r.Title,
		Description:   r.Description,
		Date:          r.Date,
		Location:      r.Location,
		AttachmentURL: r.AttachmentURL,
		Aspiration:    r.Aspiration,
		UserID:        r.UserID,
		CategoryID:    r.CategoryID,
		AgencyID:      r.AgencyID,
	}
}

func (r complaintUpdateRequest) toInput() ports.ComplaintInput {
	input := r.complaintRequest.toInput()
	input.Status = domain.ComplaintStatus(r.Status)
	return input
}

// listFilter builds the repository filter from query parameters. Bad
// UUIDs are ignored rather than rejected so stray parameters do not
// break listing.
func listFilter(userID, categoryID, agencyID, status, kind string) ports.ComplaintListFilter {
	var filter ports.ComplaintListFilter
	if id, err := uuid.Parse(userID); err == nil {
		filter.UserID = &id
	}
	if id, err := uuid.Parse(categoryID); err == nil {
		filter.CategoryID = &id
	}
	if id, err := uuid.Parse(agencyID); err == nil {
		filter.AgencyID = &id
	}
	if status != "" {
		s := domain.ComplaintStatus(status)
		filter.Status = &s
	}
	if kind != "" {
		t := domain.ComplaintType(kind)
		filter.Type = &t
	}
	return filter
}
