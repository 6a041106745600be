package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/pkg/messages"
)

const categoryColumns = "id, name, COALESCE(description, ''), created_at, updated_at"

// CategoryRepository implements ports.CategoryRepository backed by PostgreSQL.
type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}

	const insertSQL = `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
	`
	_, err := r.db.conn(ctx).Exec(ctx, insertSQL,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError().Add("name", messages.Get("category.name.unique", category.Name))
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	const selectSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db.conn(ctx).QueryRow(ctx, selectSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("category", id.String())
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.conn(ctx).Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	const updateSQL = `
		UPDATE categories
		SET name = $2, description = NULLIF($3, ''), updated_at = $4
		WHERE id = $1
	`
	tag, err := r.db.conn(ctx).Exec(ctx, updateSQL,
		category.ID, category.Name, category.Description, category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError().Add("name", messages.Get("category.name.unique", category.Name))
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("category", category.ID.String())
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.conn(ctx).Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("category", id.String())
	}
	return nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1 AND ($2::uuid IS NULL OR id <> $2))`

	var exists bool
	if err := r.db.conn(ctx).QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return exists, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
