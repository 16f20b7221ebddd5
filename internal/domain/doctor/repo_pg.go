package doctor

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

type doctorRepoPG struct{ conn queryable }

// NewDoctorRepoPG stores doctors in PostgreSQL. Consultations of a deleted
// doctor keep existing with doctor_id cleared (ON DELETE SET NULL).
func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{conn: pool}
}

const doctorCols = `id, first_name, last_name, phone, specialty_id`

func (r *doctorRepoPG) scanRow(row pgx.Row) (*Doctor, error) {
	var d Doctor
	if err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Phone, &d.SpecialtyID); err != nil {
		return nil, db.TranslatePG(err)
	}
	return &d, nil
}

func (r *doctorRepoPG) Save(ctx context.Context, d *Doctor) error {
	if d.ID == 0 {
		err := r.conn.QueryRow(ctx, `
			INSERT INTO doctor (first_name, last_name, phone, specialty_id)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			d.FirstName, d.LastName, d.Phone, d.SpecialtyID).Scan(&d.ID)
		return db.TranslatePG(err)
	}
	tag, err := r.conn.Exec(ctx, `
		UPDATE doctor SET first_name = $2, last_name = $3, phone = $4, specialty_id = $5
		WHERE id = $1`,
		d.ID, d.FirstName, d.LastName, d.Phone, d.SpecialtyID)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *doctorRepoPG) FindByID(ctx context.Context, id int64) (*Doctor, error) {
	return r.scanRow(r.conn.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
}

func (r *doctorRepoPG) FindAll(ctx context.Context) ([]*Doctor, error) {
	return r.query(ctx, `SELECT `+doctorCols+` FROM doctor ORDER BY id`)
}

func (r *doctorRepoPG) FindBySpecialtyID(ctx context.Context, specialtyID int64) ([]*Doctor, error) {
	return r.query(ctx, `SELECT `+doctorCols+` FROM doctor WHERE specialty_id = $1 ORDER BY id`, specialtyID)
}

func (r *doctorRepoPG) query(ctx context.Context, sql string, args ...interface{}) ([]*Doctor, error) {
	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslatePG(err)
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, db.TranslatePG(rows.Err())
}

func (r *doctorRepoPG) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM doctor WHERE id = $1)`, id).Scan(&exists)
	return exists, db.TranslatePG(err)
}

func (r *doctorRepoPG) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM doctor WHERE id = $1`, id)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
