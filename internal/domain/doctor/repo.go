package doctor

import "context"

// DoctorRepository is the keyed storage behind the doctor service.
type DoctorRepository interface {
	Save(ctx context.Context, d *Doctor) error
	FindByID(ctx context.Context, id int64) (*Doctor, error)
	FindAll(ctx context.Context) ([]*Doctor, error)
	FindBySpecialtyID(ctx context.Context, specialtyID int64) ([]*Doctor, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
