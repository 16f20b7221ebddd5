package history

import "context"

// HistoryRepository is the keyed storage behind the history service. A
// second history for the same patient is rejected with
// db.ErrConstraintViolation.
type HistoryRepository interface {
	Save(ctx context.Context, h *History) error
	FindByID(ctx context.Context, id int64) (*History, error)
	FindByPatientID(ctx context.Context, patientID int64) (*History, error)
	FindAll(ctx context.Context) ([]*History, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
