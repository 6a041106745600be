package domain

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintType distinguishes grievances from suggestions.
type ComplaintType string

const (
	TypeComplaint  ComplaintType = "COMPLAINT"
	TypeAspiration ComplaintType = "ASPIRATION"
)

// Visibility controls who may see a complaint.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// ComplaintStatus is the lifecycle state of a complaint. New complaints
// always start in StatusPending.
type ComplaintStatus string

const (
	StatusPending   ComplaintStatus = "PENDING"
	StatusProcess   ComplaintStatus = "PROCESS"
	StatusCompleted ComplaintStatus = "COMPLETED"
	StatusRejected  ComplaintStatus = "REJECTED"
)

// Complaint is a citizen-submitted report. It holds non-owning references to
// its submitter, its category (required), and a target agency (optional).
type Complaint struct {
	ID            uuid.UUID       `json:"id"`
	Type          ComplaintType   `json:"type"`
	Visibility    Visibility      `json:"visibility"`
	Title         string          `json:"title,omitempty"`
	Description   string          `json:"description,omitempty"`
	Date          time.Time       `json:"date"`
	Location      string          `json:"location"`
	AttachmentURL string          `json:"attachment_url,omitempty"`
	Status        ComplaintStatus `json:"status"`
	Aspiration    string          `json:"aspiration,omitempty"`

	UserID     uuid.UUID  `json:"user_id"`
	Username   string     `json:"username,omitempty"`
	CategoryID uuid.UUID  `json:"category_id"`
	Category   string     `json:"category_name,omitempty"`
	AgencyID   *uuid.UUID `json:"agency_id,omitempty"`
	AgencyName string     `json:"agency_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
