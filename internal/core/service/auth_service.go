package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/civicworks/complaint-system/internal/pkg/metrics"
	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
	"github.com/civicworks/complaint-system/internal/pkg/messages"
)

// AuthService implements registration and login on top of the user store
// and the token service.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a citizen account. Username and email uniqueness are
// checked independently so both violations surface in one response.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := domain.RoleUser
	verr := domain.NewValidationError()

	if input.Role != "" {
		parsed, ok := domain.ParseRole(input.Role)
		if !ok {
			verr.Add("role", messages.Get("user.role.invalid", input.Role))
		} else {
			role = parsed
		}
	}

	taken, err := s.users.ExistsByUsername(ctx, input.Username, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		verr.Add("username", messages.Get("user.username.unique"))
	}

	taken, err = s.users.ExistsByEmail(ctx, input.Email, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		verr.Add("email", messages.Get("user.email.unique"))
	}

	if verr.HasErrors() {
		s.logger.Warn().Str("username", input.Username).Interface("errors", verr.Fields).Msg("registration rejected")
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	s.logger.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login verifies credentials and mints a bearer token. The identifier may be
// a username or an email address.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsernameOrEmail(ctx, input.Username)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	// Reload by id for the claims. A miss here means the account vanished
	// between the credential check and the mint, which is an invariant
	// violation, not an authentication failure.
	user, err = s.users.FindByID(ctx, user.ID)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			s.logger.Error().Str("username", input.Username).Msg("user vanished after successful authentication")
			return nil, domain.ErrAuthInvariant
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.Username, map[string]any{"role": string(user.Role)})
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Msg("login successful")
	return &ports.LoginResult{Token: token, ExpiresIn: s.tokens.ExpirationSeconds()}, nil
}
