package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agency is a government unit that complaints can be addressed to. Every
// agency exclusively owns one User account (role AGENCY) whose lifecycle is
// bound to the agency: created together, deleted together.
type Agency struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
