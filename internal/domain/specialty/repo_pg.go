package specialty

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type specialtyRepoPG struct{ conn queryable }

// NewSpecialtyRepoPG stores specialties in PostgreSQL. Doctors are removed
// with their specialty by the ON DELETE CASCADE on doctor.specialty_id.
func NewSpecialtyRepoPG(pool *pgxpool.Pool) SpecialtyRepository {
	return &specialtyRepoPG{conn: pool}
}

const specialtyCols = `id, name, description`

func (r *specialtyRepoPG) scanRow(row pgx.Row) (*Specialty, error) {
	var s Specialty
	if err := row.Scan(&s.ID, &s.Name, &s.Description); err != nil {
		return nil, db.TranslatePG(err)
	}
	return &s, nil
}

func (r *specialtyRepoPG) Save(ctx context.Context, s *Specialty) error {
	if s.ID == 0 {
		err := r.conn.QueryRow(ctx,
			`INSERT INTO specialty (name, description) VALUES ($1, $2) RETURNING id`,
			s.Name, s.Description).Scan(&s.ID)
		return db.TranslatePG(err)
	}
	tag, err := r.conn.Exec(ctx,
		`UPDATE specialty SET name = $2, description = $3 WHERE id = $1`,
		s.ID, s.Name, s.Description)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *specialtyRepoPG) FindByID(ctx context.Context, id int64) (*Specialty, error) {
	return r.scanRow(r.conn.QueryRow(ctx, `SELECT `+specialtyCols+` FROM specialty WHERE id = $1`, id))
}

func (r *specialtyRepoPG) FindAll(ctx context.Context) ([]*Specialty, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+specialtyCols+` FROM specialty ORDER BY id`)
	if err != nil {
		return nil, db.TranslatePG(err)
	}
	defer rows.Close()
	var items []*Specialty
	for rows.Next() {
		s, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, db.TranslatePG(rows.Err())
}

func (r *specialtyRepoPG) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM specialty WHERE id = $1)`, id).Scan(&exists)
	return exists, db.TranslatePG(err)
}

func (r *specialtyRepoPG) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM specialty WHERE id = $1`, id)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
