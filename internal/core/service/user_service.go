package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
	"github.com/civicworks/complaint-system/internal/pkg/messages"
)

// UserService implements admin-facing user management.
type UserService struct {
	users    ports.UserRepository
	agencies ports.AgencyRepository
	txm      ports.TxManager
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, agencies ports.AgencyRepository, txm ports.TxManager, logger zerolog.Logger) *UserService {
	return &UserService{users: users, agencies: agencies, txm: txm, logger: logger}
}

func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
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

	if err := s.checkUniqueness(ctx, input.Username, input.Email, nil, verr); err != nil {
		return nil, err
	}
	if verr.HasErrors() {
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

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user created")
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, role *domain.Role) ([]*domain.User, error) {
	return s.users.List(ctx, role)
}

// Update applies only non-blank fields. Uniqueness checks exclude the user's
// own row, so resubmitting unchanged values succeeds; when nothing actually
// changes the stored record is returned untouched, timestamps included.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input ports.UserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := domain.NewValidationError()
	if err := s.checkUniqueness(ctx, input.Username, input.Email, &id, verr); err != nil {
		return nil, err
	}
	if input.Role != "" {
		if _, ok := domain.ParseRole(input.Role); !ok {
			verr.Add("role", messages.Get("user.role.invalid", input.Role))
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	changed := false
	if input.Email != "" && input.Email != user.Email {
		user.Email = input.Email
		changed = true
	}
	if input.Username != "" && input.Username != user.Username {
		user.Username = input.Username
		changed = true
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		changed = true
	}
	if input.Role != "" {
		role, _ := domain.ParseRole(input.Role)
		if role != user.Role {
			user.Role = role
			changed = true
		}
	}

	if !changed {
		s.logger.Info().Str("user_id", id.String()).Msg("no changes detected")
		return user, nil
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user updated")
	return user, nil
}

// Delete removes the user and, when the user is the owned account of an
// agency, the agency record with it, in one unit of work.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	return s.txm.WithinTx(ctx, func(ctx context.Context) error {
		agency, err := s.agencies.FindByUserID(ctx, id)
		if err != nil {
			var nf *domain.NotFoundError
			if !errors.As(err, &nf) {
				return err
			}
		} else {
			if err := s.agencies.Delete(ctx, agency.ID); err != nil {
				return err
			}
			s.logger.Info().Str("agency_id", agency.ID.String()).Msg("owned agency removed with user")
		}

		if err := s.users.Delete(ctx, id); err != nil {
			return err
		}
		s.logger.Info().Str("user_id", id.String()).Msg("user deleted")
		return nil
	})
}

// checkUniqueness accumulates username/email collisions into verr. Blank
// values are skipped so partial updates don't trip required-field checks.
func (s *UserService) checkUniqueness(ctx context.Context, username, email string, excludeID *uuid.UUID, verr *domain.ValidationError) error {
	if username != "" {
		taken, err := s.users.ExistsByUsername(ctx, username, excludeID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("username", messages.Get("user.username.unique"))
		}
	}
	if email != "" {
		taken, err := s.users.ExistsByEmail(ctx, email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("email", messages.Get("user.email.unique"))
		}
	}
	return nil
}
