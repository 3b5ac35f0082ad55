package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/inkomoko/identity/internal/identity/domain"
)

type membershipsRepo struct {
	db dbtx
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memberships (user_id, org_id, created_at)
		VALUES (?, ?, ?)`,
		m.UserID, m.OrgID, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) ListOrganisationsForUser(ctx context.Context, userID string) ([]domain.Organisation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.name, o.description, o.created_at, o.updated_at
		FROM organisations o
		JOIN memberships m ON m.org_id = o.id
		WHERE m.user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organisation
	for rows.Next() {
		var (
			o           domain.Organisation
			description sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.Name, &description, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.Description = mapNullString(description)
		orgs = append(orgs, o)
	}

	return orgs, rows.Err()
}
