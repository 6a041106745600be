package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies complaints. A category cannot be deleted while any
// complaint still references it.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
