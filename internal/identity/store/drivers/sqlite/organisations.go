package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/inkomoko/identity/internal/identity/domain"
)

type organisationsRepo struct {
	db dbtx
}

func (r *organisationsRepo) CreateOrganisation(ctx context.Context, o domain.Organisation) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organisations (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.Name, mapStringNull(o.Description), now, now,
	)
	return mapConstraint(err)
}

func (r *organisationsRepo) GetOrganisationByID(ctx context.Context, id string) (domain.Organisation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM organisations WHERE id = ?`, id)

	var (
		o           domain.Organisation
		description sql.NullString
	)
	err := row.Scan(&o.ID, &o.Name, &description, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Organisation{}, mapNotFound(err)
	}
	o.Description = mapNullString(description)
	return o, nil
}
