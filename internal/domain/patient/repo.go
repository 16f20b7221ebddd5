package patient

import "context"

// PatientRepository is the keyed storage behind the patient service.
// A second patient with an existing national id is rejected with
// db.ErrConstraintViolation.
type PatientRepository interface {
	Save(ctx context.Context, p *Patient) error
	FindByID(ctx context.Context, id int64) (*Patient, error)
	FindAll(ctx context.Context) ([]*Patient, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
