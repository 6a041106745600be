package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role enumerates the account roles known to the system.
type Role string

const (
	RoleUser   Role = "USER"
	RoleAgency Role = "AGENCY"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole maps a role name to its Role value. The second return value is
// false when the name resolves to no known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAgency, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User models an account that can authenticate against the system. Citizen
// accounts carry RoleUser; accounts owned by an agency carry RoleAgency.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
