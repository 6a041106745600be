package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
	"github.com/civicworks/complaint-system/internal/pkg/messages"
)

// AgencyService manages agencies together with their owned user accounts.
type AgencyService struct {
	agencies ports.AgencyRepository
	users    ports.UserRepository
	txm      ports.TxManager
	logger   zerolog.Logger
}

func NewAgencyService(agencies ports.AgencyRepository, users ports.UserRepository, txm ports.TxManager, logger zerolog.Logger) *AgencyService {
	return &AgencyService{agencies: agencies, users: users, txm: txm, logger: logger}
}

// Create validates phone and nested-user uniqueness together, then writes
// the AGENCY user and the agency in one unit of work.
func (s *AgencyService) Create(ctx context.Context, input ports.AgencyInput) (*domain.Agency, error) {
	verr := domain.NewValidationError()
	if err := s.checkPhoneUniqueness(ctx, input.Phone, nil, verr); err != nil {
		return nil, err
	}
	if err := s.checkUserUniqueness(ctx, input.User, nil, verr); err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		s.logger.Warn().Str("name", input.Name).Interface("errors", verr.Fields).Msg("agency creation rejected")
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.User.Username,
		Email:        input.User.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAgency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	agency := &domain.Agency{
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		agency.User = *user
		return s.agencies.Create(ctx, agency)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("agency_id", agency.ID.String()).Str("user_id", user.ID.String()).Msg("agency created")
	return agency, nil
}

func (s *AgencyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	return s.agencies.FindByID(ctx, id)
}

func (s *AgencyService) List(ctx context.Context) ([]*domain.Agency, error) {
	return s.agencies.List(ctx)
}

// Update overwrites the agency fields and writes nested user fields only
// when they actually changed.
func (s *AgencyService) Update(ctx context.Context, id uuid.UUID, input ports.AgencyInput) (*domain.Agency, error) {
	agency, err := s.agencies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := domain.NewValidationError()
	if err := s.checkPhoneUniqueness(ctx, input.Phone, &id, verr); err != nil {
		return nil, err
	}
	if err := s.checkUserUniqueness(ctx, input.User, &agency.User.ID, verr); err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		s.logger.Warn().Str("agency_id", id.String()).Interface("errors", verr.Fields).Msg("agency update rejected")
		return nil, verr
	}

	now := time.Now().UTC()
	agency.Name = input.Name
	agency.Address = input.Address
	agency.Phone = input.Phone
	agency.UpdatedAt = now

	userChanged := false
	if input.User.Email != "" && input.User.Email != agency.User.Email {
		agency.User.Email = input.User.Email
		userChanged = true
	}
	if input.User.Username != "" && input.User.Username != agency.User.Username {
		agency.User.Username = input.User.Username
		userChanged = true
	}
	if input.User.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.User.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		agency.User.PasswordHash = string(hash)
		userChanged = true
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if userChanged {
			agency.User.UpdatedAt = now
			if err := s.users.Update(ctx, &agency.User); err != nil {
				return err
			}
		}
		return s.agencies.Update(ctx, agency)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("agency_id", agency.ID.String()).Msg("agency updated")
	return agency, nil
}

// Delete removes the agency and its owned user atomically.
func (s *AgencyService) Delete(ctx context.Context, id uuid.UUID) error {
	agency, err := s.agencies.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.agencies.Delete(ctx, id); err != nil {
			return err
		}
		return s.users.Delete(ctx, agency.User.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("agency_id", id.String()).Str("user_id", agency.User.ID.String()).Msg("agency and owned user deleted")
	return nil
}

func (s *AgencyService) checkPhoneUniqueness(ctx context.Context, phone string, excludeID *uuid.UUID, verr *domain.ValidationError) error {
	if phone == "" {
		return nil
	}
	taken, err := s.agencies.ExistsByPhone(ctx, phone, excludeID)
	if err != nil {
		return err
	}
	if taken {
		verr.Add("phone", messages.Get("agency.phone.unique"))
	}
	return nil
}

func (s *AgencyService) checkUserUniqueness(ctx context.Context, input ports.UserInput, excludeID *uuid.UUID, verr *domain.ValidationError) error {
	if input.Username != "" {
		taken, err := s.users.ExistsByUsername(ctx, input.Username, excludeID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("username", messages.Get("user.username.unique"))
		}
	}
	if input.Email != "" {
		taken, err := s.users.ExistsByEmail(ctx, input.Email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			verr.Add("email", messages.Get("user.email.unique"))
		}
	}
	return nil
}
