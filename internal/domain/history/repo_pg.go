package history

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinic/clinic/internal/platform/civil"
	"github.com/clinic/clinic/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type historyRepoPG struct{ conn queryable }

func NewHistoryRepoPG(pool *pgxpool.Pool) HistoryRepository {
	return &historyRepoPG{conn: pool}
}

const historyCols = `id, description, date, patient_id`

func (r *historyRepoPG) scanRow(row pgx.Row) (*History, error) {
	var h History
	var date time.Time
	if err := row.Scan(&h.ID, &h.Description, &date, &h.PatientID); err != nil {
		return nil, db.TranslatePG(err)
	}
	h.Date = civil.DateOf(date)
	return &h, nil
}

func (r *historyRepoPG) Save(ctx context.Context, h *History) error {
	if err := h.check(); err != nil {
		return err
	}
	if h.ID == 0 {
		err := r.conn.QueryRow(ctx, `
			INSERT INTO history (description, date, patient_id)
			VALUES ($1, $2, $3) RETURNING id`,
			h.Description, h.Date.Time, h.PatientID).Scan(&h.ID)
		return db.TranslatePG(err)
	}
	tag, err := r.conn.Exec(ctx, `
		UPDATE history SET description = $2, date = $3, patient_id = $4
		WHERE id = $1`,
		h.ID, h.Description, h.Date.Time, h.PatientID)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *historyRepoPG) FindByID(ctx context.Context, id int64) (*History, error) {
	return r.scanRow(r.conn.QueryRow(ctx, `SELECT `+historyCols+` FROM history WHERE id = $1`, id))
}

func (r *historyRepoPG) FindByPatientID(ctx context.Context, patientID int64) (*History, error) {
	return r.scanRow(r.conn.QueryRow(ctx, `SELECT `+historyCols+` FROM history WHERE patient_id = $1`, patientID))
}

func (r *historyRepoPG) FindAll(ctx context.Context) ([]*History, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+historyCols+` FROM history ORDER BY id`)
	if err != nil {
		return nil, db.TranslatePG(err)
	}
	defer rows.Close()
	var items []*History
	for rows.Next() {
		h, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, db.TranslatePG(rows.Err())
}

func (r *historyRepoPG) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM history WHERE id = $1)`, id).Scan(&exists)
	return exists, db.TranslatePG(err)
}

func (r *historyRepoPG) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM history WHERE id = $1`, id)
	if err != nil {
		return db.TranslatePG(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
