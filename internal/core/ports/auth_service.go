package ports

import (
	"context"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// RegisterInput carries a self-service registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	// Role is the requested role name; empty defaults to USER.
	Role string
}

// LoginInput carries credentials. Username accepts either the username or
// the registered email address.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	ExpiresIn int64
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}
