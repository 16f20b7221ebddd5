package specialty

import "context"

// SpecialtyRepository is the keyed storage behind the specialty service.
// Save inserts when ID is zero (assigning the id) and replaces otherwise.
// FindByID returns db.ErrNotFound for unknown ids.
type SpecialtyRepository interface {
	Save(ctx context.Context, s *Specialty) error
	FindByID(ctx context.Context, id int64) (*Specialty, error)
	FindAll(ctx context.Context) ([]*Specialty, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
