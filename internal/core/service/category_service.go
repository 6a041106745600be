package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
	"github.com/civicworks/complaint-system/internal/pkg/messages"
)

// CategoryService manages complaint categories. Reads go through an
// optional cache; mutations invalidate it.
type CategoryService struct {
	categories ports.CategoryRepository
	complaints ports.ComplaintRepository
	cache      ports.CategoryCache
	logger     zerolog.Logger
}

// NewCategoryService builds a CategoryService. cache may be nil.
func NewCategoryService(categories ports.CategoryRepository, complaints ports.ComplaintRepository, cache ports.CategoryCache, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, complaints: complaints, cache: cache, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	if err := s.checkNameUniqueness(ctx, input.Name, nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.invalidate(ctx, category.ID)
	s.logger.Info().Str("category_id", category.ID.String()).Msg("category created")
	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if s.cache != nil {
		if category, ok := s.cache.Get(ctx, id); ok {
			return category, nil
		}
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, category)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	if s.cache != nil {
		if categories, ok := s.cache.GetList(ctx); ok {
			return categories, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, categories)
	}
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input ports.CategoryInput) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != category.Name {
		if err := s.checkNameUniqueness(ctx, input.Name, &id); err != nil {
			return nil, err
		}
		category.Name = input.Name
	}
	category.Description = input.Description
	category.UpdatedAt = time.Now().UTC()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("category_id", id.String()).Msg("category updated")
	return category, nil
}

// Delete refuses to remove a category that complaints still reference; that
// surfaces as a conflict-style validation error, not a not-found.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.complaints.ExistsByCategoryID(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		s.logger.Warn().Str("category_id", id.String()).Msg("category still referenced by complaints")
		return domain.NewValidationError().Add("id", messages.Get("category.delete.referenced"))
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("category_id", id.String()).Msg("category deleted")
	return nil
}

func (s *CategoryService) checkNameUniqueness(ctx context.Context, name string, excludeID *uuid.UUID) error {
	taken, err := s.categories.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewValidationError().Add("name", messages.Get("category.name.unique", name))
	}
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
}
