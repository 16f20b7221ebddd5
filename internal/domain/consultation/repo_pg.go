package consultation

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

type consultationRepoPG struct{ conn queryable }

// NewConsultationRepoPG stores consultations in PostgreSQL. The prescription
// is removed with its consultation by ON DELETE CASCADE.
func NewConsultationRepoPG(pool *pgxpool.Pool) ConsultationRepository {
	return &consultationRepoPG{conn: pool}
}

const consultationCols = `id, occurred_at, reason, diagnosis, patient_id, doctor_id`

func (r *consultationRepoPG) scanRow(row pgx.Row) (*Consultation, error) {
	var c Consultation
	if err := row.Scan(&c.ID, &c.OccurredAt, &c.Reason, &c.Diagnosis, &c.PatientID, &c.DoctorID); err != nil {
		return nil, db.TranslatePG(err)
	}
	return &c, nil
}

func (r *consultationRepoPG) Save(ctx context.Context, c *Consultation) error {
	if err := c.check(); err != nil {
		return err
	}
	if c.ID == 0 {
		err := r.conn.QueryRow(ctx, `
			INSERT INTO consultation (occurred_at, reason, diagnosis, patient_id, doctor_id)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			c.OccurredAt, c.Reason, c.Diagnosis, c.PatientID, c.DoctorID).Scan(&c.ID)
		return db.TranslatePG(err)
	}
	tag, err := r.conn.Exec(ctx, `
		UPDATE consultation SET occurred_at = $2, reason = $3, diagnosis = $4, patient_id = $5, doctor_id = $6
		WHERE id = $1`,
		c.ID, c.OccurredAt, c.Reason, c.Diagnosis, c.PatientID, c.DoctorID)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *consultationRepoPG) FindByID(ctx context.Context, id int64) (*Consultation, error) {
	return r.scanRow(r.conn.QueryRow(ctx, `SELECT `+consultationCols+` FROM consultation WHERE id = $1`, id))
}

func (r *consultationRepoPG) FindAll(ctx context.Context) ([]*Consultation, error) {
	return r.query(ctx, `SELECT `+consultationCols+` FROM consultation ORDER BY id`)
}

func (r *consultationRepoPG) FindByPatientID(ctx context.Context, patientID int64) ([]*Consultation, error) {
	return r.query(ctx, `SELECT `+consultationCols+` FROM consultation WHERE patient_id = $1 ORDER BY occurred_at, id`, patientID)
}

func (r *consultationRepoPG) query(ctx context.Context, sql string, args ...interface{}) ([]*Consultation, error) {
	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, db.TranslatePG(err)
	}
	defer rows.Close()
	var items []*Consultation
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, db.TranslatePG(rows.Err())
}

func (r *consultationRepoPG) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM consultation WHERE id = $1)`, id).Scan(&exists)
	return exists, db.TranslatePG(err)
}

func (r *consultationRepoPG) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM consultation WHERE id = $1`, id)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
