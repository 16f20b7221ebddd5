package prescription

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

type prescriptionRepoPG struct{ conn queryable }

func NewPrescriptionRepoPG(pool *pgxpool.Pool) PrescriptionRepository {
	return &prescriptionRepoPG{conn: pool}
}

const prescriptionCols = `id, medication, dosage, consultation_id`

func (r *prescriptionRepoPG) scanRow(row pgx.Row) (*Prescription, error) {
	var p Prescription
	if err := row.Scan(&p.ID, &p.Medication, &p.Dosage, &p.ConsultationID); err != nil {
		return nil, db.TranslatePG(err)
	}
	return &p, nil
}

func (r *prescriptionRepoPG) Save(ctx context.Context, p *Prescription) error {
	if p.ID == 0 {
		err := r.conn.QueryRow(ctx, `
			INSERT INTO prescription (medication, dosage, consultation_id)
			VALUES ($1, $2, $3) RETURNING id`,
			p.Medication, p.Dosage, p.ConsultationID).Scan(&p.ID)
		return db.TranslatePG(err)
	}
	tag, err := r.conn.Exec(ctx, `
		UPDATE prescription SET medication = $2, dosage = $3, consultation_id = $4
		WHERE id = $1`,
		p.ID, p.Medication, p.Dosage, p.ConsultationID)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *prescriptionRepoPG) FindByID(ctx context.Context, id int64) (*Prescription, error) {
	return r.scanRow(r.conn.QueryRow(ctx, `SELECT `+prescriptionCols+` FROM prescription WHERE id = $1`, id))
}

func (r *prescriptionRepoPG) FindByConsultationID(ctx context.Context, consultationID int64) (*Prescription, error) {
	return r.scanRow(r.conn.QueryRow(ctx, `SELECT `+prescriptionCols+` FROM prescription WHERE consultation_id = $1`, consultationID))
}

func (r *prescriptionRepoPG) FindAll(ctx context.Context) ([]*Prescription, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+prescriptionCols+` FROM prescription ORDER BY id`)
	if err != nil {
		return nil, db.TranslatePG(err)
	}
	defer rows.Close()
	var items []*Prescription
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, db.TranslatePG(rows.Err())
}

func (r *prescriptionRepoPG) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM prescription WHERE id = $1)`, id).Scan(&exists)
	return exists, db.TranslatePG(err)
}

func (r *prescriptionRepoPG) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM prescription WHERE id = $1`, id)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
