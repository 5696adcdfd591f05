package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// OrganisationRepository defines the interface for organisation persistence.
type OrganisationRepository interface {
	GetByID(ctx context.Context, id string) (*Organisation, error)
	ListForUser(ctx context.Context, userID string) ([]Organisation, error)
	IsMember(ctx context.Context, orgID, userID string) (bool, error)
}

// SQLiteOrganisationRepository implements OrganisationRepository using SQLite.
type SQLiteOrganisationRepository struct {
	db *sql.DB
}

// NewOrganisationRepository creates a new SQLite-backed organisation repository.
func NewOrganisationRepository(db *sql.DB) *SQLiteOrganisationRepository {
	return &SQLiteOrganisationRepository{db: db}
}

// GetByID retrieves an organisation by its unique ID.
func (r *SQLiteOrganisationRepository) GetByID(ctx context.Context, id string) (*Organisation, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, created_at FROM organisations WHERE id = ?", id)

	org, err := scanOrganisation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	return org, nil
}

// ListForUser returns all organisations the user belongs to, oldest first.
func (r *SQLiteOrganisationRepository) ListForUser(ctx context.Context, userID string) ([]Organisation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.id, o.name, o.description, o.created_at
		 FROM organisations o
		 JOIN user_organisations uo ON uo.org_id = o.id
		 WHERE uo.user_id = ?
		 ORDER BY o.created_at ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("listing organisations: %w", err)
	}
	defer rows.Close()

	var orgs []Organisation
	for rows.Next() {
		org, err := scanOrganisation(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, *org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating organisations: %w", err)
	}

	if orgs == nil {
		orgs = []Organisation{}
	}
	return orgs, nil
}

// IsMember reports whether the user belongs to the organisation.
func (r *SQLiteOrganisationRepository) IsMember(ctx context.Context, orgID, userID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM user_organisations WHERE org_id = ? AND user_id = ?",
		orgID, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking membership: %w", err)
	}
	return count > 0, nil
}

// scanOrganisation scans an organisation from a Row or Rows.
func scanOrganisation(s interface{ Scan(dest ...any) error }) (*Organisation, error) {
	var org Organisation
	var createdAt string

	if err := s.Scan(&org.ID, &org.Name, &org.Description, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning organisation: %w", err)
	}

	org.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	return &org, nil
}
