package doctor

import (
	"context"

	"github.com/clinic/clinic/internal/domain/specialty"
	"github.com/clinic/clinic/internal/platform/httpapi"
)

// SpecialtyReader resolves a doctor's specialty for its representation.
type SpecialtyReader interface {
	GetSpecialty(ctx context.Context, id int64) (*specialty.Specialty, bool, error)
}

// Viewer builds doctor representations with the specialty embedded.
type Viewer struct {
	specialties SpecialtyReader
}

func NewViewer(specialties SpecialtyReader) *Viewer {
	return &Viewer{specialties: specialties}
}

func (v *Viewer) lookup() *httpapi.Lookup[specialty.Specialty] {
	if v == nil || v.specialties == nil {
		return httpapi.NewLookup[specialty.Specialty](nil)
	}
	return httpapi.NewLookup[specialty.Specialty](v.specialties.GetSpecialty)
}

func (v *Viewer) View(ctx context.Context, d *Doctor) (*View, error) {
	return viewWith(ctx, d, v.lookup())
}

func (v *Viewer) ViewAll(ctx context.Context, doctors []*Doctor) ([]*View, error) {
	specialties := v.lookup()
	out := make([]*View, 0, len(doctors))
	for _, d := range doctors {
		view, err := viewWith(ctx, d, specialties)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func viewWith(ctx context.Context, d *Doctor, specialties *httpapi.Lookup[specialty.Specialty]) (*View, error) {
	sp, err := specialties.Get(ctx, d.SpecialtyID)
	if err != nil {
		return nil, err
	}
	return &View{Doctor: d, Specialty: sp}, nil
}
