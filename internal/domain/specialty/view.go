package specialty

import (
	"context"

	"github.com/clinic/clinic/internal/platform/httpapi"
)

// Viewer builds specialty representations with the affiliated doctors
// embedded.
type Viewer struct {
	doctors httpapi.ChildrenFunc
}

func NewViewer(doctors httpapi.ChildrenFunc) *Viewer {
	return &Viewer{doctors: doctors}
}

func (v *Viewer) View(ctx context.Context, sp *Specialty) (*View, error) {
	view := &View{Specialty: sp, Doctors: []struct{}{}}
	if v == nil || v.doctors == nil {
		return view, nil
	}
	doctors, err := v.doctors(ctx, sp.ID)
	if err != nil {
		return nil, err
	}
	view.Doctors = doctors
	return view, nil
}

func (v *Viewer) ViewAll(ctx context.Context, items []*Specialty) ([]*View, error) {
	out := make([]*View, 0, len(items))
	for _, sp := range items {
		view, err := v.View(ctx, sp)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}
