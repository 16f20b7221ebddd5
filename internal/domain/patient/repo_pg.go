package patient

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

type patientRepoPG struct{ conn queryable }

// NewPatientRepoPG stores patients in PostgreSQL. The patient's history is
// removed by ON DELETE CASCADE; consultations block the delete.
func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{conn: pool}
}

const patientCols = `id, first_name, last_name, age, national_id, phone`

func (r *patientRepoPG) scanRow(row pgx.Row) (*Patient, error) {
	var p Patient
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age, &p.NationalID, &p.Phone); err != nil {
		return nil, db.TranslatePG(err)
	}
	return &p, nil
}

func (r *patientRepoPG) Save(ctx context.Context, p *Patient) error {
	if p.ID == 0 {
		err := r.conn.QueryRow(ctx, `
			INSERT INTO patient (first_name, last_name, age, national_id, phone)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			p.FirstName, p.LastName, p.Age, p.NationalID, p.Phone).Scan(&p.ID)
		return db.TranslatePG(err)
	}
	tag, err := r.conn.Exec(ctx, `
		UPDATE patient SET first_name = $2, last_name = $3, age = $4, national_id = $5, phone = $6
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.Age, p.NationalID, p.Phone)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *patientRepoPG) FindByID(ctx context.Context, id int64) (*Patient, error) {
	return r.scanRow(r.conn.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *patientRepoPG) FindAll(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY id`)
	if err != nil {
		return nil, db.TranslatePG(err)
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, db.TranslatePG(rows.Err())
}

func (r *patientRepoPG) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM patient WHERE id = $1)`, id).Scan(&exists)
	return exists, db.TranslatePG(err)
}

func (r *patientRepoPG) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
