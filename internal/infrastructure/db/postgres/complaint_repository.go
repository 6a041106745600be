package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
)

const complaintSelect = `
	SELECT c.id, c.type, c.visibility, COALESCE(c.title, ''), COALESCE(c.description, ''),
	       c.date, c.location, COALESCE(c.attachment_url, ''), c.status, COALESCE(c.aspiration, ''),
	       c.user_id, u.username, c.category_id, cat.name, c.agency_id, COALESCE(a.name, ''),
	       c.created_at, c.updated_at
	FROM complaints c
	JOIN users u ON u.id = c.user_id
	JOIN categories cat ON cat.id = c.category_id
	LEFT JOIN agencies a ON a.id = c.agency_id
`

// ComplaintRepository implements ports.ComplaintRepository backed by
// PostgreSQL. Reads join the submitter, category, and agency display names.
type ComplaintRepository struct {
	db *DB
}

func NewComplaintRepository(db *DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	if complaint.ID == uuid.Nil {
		complaint.ID = uuid.New()
	}

	const insertSQL = `
		INSERT INTO complaints (id, type, visibility, title, description, date, location,
		                        attachment_url, status, aspiration, user_id, category_id, agency_id,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, NULLIF($8, ''), $9, NULLIF($10, ''),
		        $11, $12, $13, $14, $15)
	`
	_, err := r.db.conn(ctx).Exec(ctx, insertSQL,
		complaint.ID, string(complaint.Type), string(complaint.Visibility), complaint.Title,
		complaint.Description, complaint.Date, complaint.Location, complaint.AttachmentURL,
		string(complaint.Status), complaint.Aspiration, complaint.UserID, complaint.CategoryID,
		complaint.AgencyID, complaint.CreatedAt, complaint.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	complaint, err := scanComplaint(r.db.conn(ctx).QueryRow(ctx, complaintSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("complaint", id.String())
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return complaint, nil
}

func (r *ComplaintRepository) List(ctx context.Context, filter ports.ComplaintListFilter) ([]*domain.Complaint, error) {
	query := complaintSelect
	var conds []string
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.UserID != nil {
		add("c.user_id = $%d", *filter.UserID)
	}
	if filter.CategoryID != nil {
		add("c.category_id = $%d", *filter.CategoryID)
	}
	if filter.AgencyID != nil {
		add("c.agency_id = $%d", *filter.AgencyID)
	}
	if filter.Status != nil {
		add("c.status = $%d", string(*filter.Status))
	}
	if filter.Type != nil {
		add("c.type = $%d", string(*filter.Type))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := r.db.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer rows.Close()

	var complaints []*domain.Complaint
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		complaints = append(complaints, complaint)
	}
	return complaints, rows.Err()
}

func (r *ComplaintRepository) Update(ctx context.Context, complaint *domain.Complaint) error {
	const updateSQL = `
		UPDATE complaints
		SET type = $2, visibility = $3, title = NULLIF($4, ''), description = NULLIF($5, ''),
		    date = $6, location = $7, attachment_url = NULLIF($8, ''), status = $9,
		    aspiration = NULLIF($10, ''), category_id = $11, agency_id = $12, updated_at = $13
		WHERE id = $1
	`
	tag, err := r.db.conn(ctx).Exec(ctx, updateSQL,
		complaint.ID, string(complaint.Type), string(complaint.Visibility), complaint.Title,
		complaint.Description, complaint.Date, complaint.Location, complaint.AttachmentURL,
		string(complaint.Status), complaint.Aspiration, complaint.CategoryID, complaint.AgencyID,
		complaint.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("complaint", complaint.ID.String())
	}
	return nil
}

func (r *ComplaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.conn(ctx).Exec(ctx, `DELETE FROM complaints WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("complaint", id.String())
	}
	return nil
}

func (r *ComplaintRepository) ExistsByCategoryID(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM complaints WHERE category_id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check complaints by category: %w", err)
	}
	return exists, nil
}

func scanComplaint(row pgx.Row) (*domain.Complaint, error) {
	var c domain.Complaint
	var cType, visibility, status string
	err := row.Scan(
		&c.ID, &cType, &visibility, &c.Title, &c.Description,
		&c.Date, &c.Location, &c.AttachmentURL, &status, &c.Aspiration,
		&c.UserID, &c.Username, &c.CategoryID, &c.Category, &c.AgencyID, &c.AgencyName,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Type = domain.ComplaintType(cType)
	c.Visibility = domain.Visibility(visibility)
	c.Status = domain.ComplaintStatus(status)
	return &c, nil
}
