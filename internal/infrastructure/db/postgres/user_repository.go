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

const userColumns = "id, username, email, password_hash, role, created_at, updated_at"

// UserRepository implements ports.UserRepository backed by PostgreSQL.
type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	const insertSQL = `
		INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.conn(ctx).Exec(ctx, insertSQL,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError().Add("username", messages.Get("user.username.unique"))
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const selectSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.conn(ctx).QueryRow(ctx, selectSQL, id), id.String())
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	const selectSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	return r.scanOne(r.db.conn(ctx).QueryRow(ctx, selectSQL, identifier), identifier)
}

func (r *UserRepository) List(ctx context.Context, role *domain.Role) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	args := []any{}
	if role != nil {
		query = `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at`
		args = append(args, string(*role))
	}

	rows, err := r.db.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	const updateSQL = `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, role = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := r.db.conn(ctx).Exec(ctx, updateSQL,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("user", user.ID.String())
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.conn(ctx).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("user", id.String())
	}
	return nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "username", username, excludeID)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *UserRepository) exists(ctx context.Context, column, value string, excludeID *uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM users WHERE %s = $1 AND ($2::uuid IS NULL OR id <> $2))`, column)

	var exists bool
	if err := r.db.conn(ctx).QueryRow(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user %s: %w", column, err)
	}
	return exists, nil
}

func (r *UserRepository) scanOne(row pgx.Row, id string) (*domain.User, error) {
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
