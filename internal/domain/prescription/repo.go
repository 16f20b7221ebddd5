package prescription

import "context"

// PrescriptionRepository is the keyed storage behind the prescription
// service. A second prescription for the same consultation is rejected with
// db.ErrConstraintViolation.
type PrescriptionRepository interface {
	Save(ctx context.Context, p *Prescription) error
	FindByID(ctx context.Context, id int64) (*Prescription, error)
	FindAll(ctx context.Context) ([]*Prescription, error)
	FindByConsultationID(ctx context.Context, consultationID int64) (*Prescription, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
