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

const agencySelect = `
	SELECT a.id, a.name, a.address, a.phone, a.created_at, a.updated_at,
	       u.id, u.username, u.email, u.password_hash, u.role, u.created_at, u.updated_at
	FROM agencies a
	JOIN users u ON u.id = a.user_id
`

// AgencyRepository implements ports.AgencyRepository backed by PostgreSQL.
// It persists the agency row only; the owned user row belongs to
// UserRepository and both writes share one transaction.
type AgencyRepository struct {
	db *DB
}

func NewAgencyRepository(db *DB) *AgencyRepository {
	return &AgencyRepository{db: db}
}

func (r *AgencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	if agency.ID == uuid.Nil {
		agency.ID = uuid.New()
	}

	const insertSQL = `
		INSERT INTO agencies (id, name, address, phone, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.conn(ctx).Exec(ctx, insertSQL,
		agency.ID, agency.Name, agency.Address, agency.Phone, agency.User.ID, agency.CreatedAt, agency.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError().Add("phone", messages.Get("agency.phone.unique"))
		}
		return fmt.Errorf("insert agency: %w", err)
	}
	return nil
}

func (r *AgencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	agency, err := scanAgency(r.db.conn(ctx).QueryRow(ctx, agencySelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("agency", id.String())
		}
		return nil, fmt.Errorf("find agency: %w", err)
	}
	return agency, nil
}

func (r *AgencyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Agency, error) {
	agency, err := scanAgency(r.db.conn(ctx).QueryRow(ctx, agencySelect+` WHERE a.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("agency", userID.String())
		}
		return nil, fmt.Errorf("find agency by user: %w", err)
	}
	return agency, nil
}

func (r *AgencyRepository) List(ctx context.Context) ([]*domain.Agency, error) {
	rows, err := r.db.conn(ctx).Query(ctx, agencySelect+` ORDER BY a.created_at`)
	if err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	defer rows.Close()

	var agencies []*domain.Agency
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("scan agency: %w", err)
		}
		agencies = append(agencies, agency)
	}
	return agencies, rows.Err()
}

func (r *AgencyRepository) Update(ctx context.Context, agency *domain.Agency) error {
	const updateSQL = `
		UPDATE agencies
		SET name = $2, address = $3, phone = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.db.conn(ctx).Exec(ctx, updateSQL,
		agency.ID, agency.Name, agency.Address, agency.Phone, agency.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError().Add("phone", messages.Get("agency.phone.unique"))
		}
		return fmt.Errorf("update agency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("agency", agency.ID.String())
	}
	return nil
}

func (r *AgencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.conn(ctx).Exec(ctx, `DELETE FROM agencies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("agency", id.String())
	}
	return nil
}

func (r *AgencyRepository) ExistsByPhone(ctx context.Context, phone string, excludeID *uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM agencies WHERE phone = $1 AND ($2::uuid IS NULL OR id <> $2))`

	var exists bool
	if err := r.db.conn(ctx).QueryRow(ctx, query, phone, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check agency phone: %w", err)
	}
	return exists, nil
}

func scanAgency(row pgx.Row) (*domain.Agency, error) {
	var a domain.Agency
	var role string
	err := row.Scan(
		&a.ID, &a.Name, &a.Address, &a.Phone, &a.CreatedAt, &a.UpdatedAt,
		&a.User.ID, &a.User.Username, &a.User.Email, &a.User.PasswordHash, &role, &a.User.CreatedAt, &a.User.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.User.Role = domain.Role(role)
	return &a, nil
}
