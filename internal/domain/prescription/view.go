package prescription

import (
	"context"
	"errors"

	"github.com/clinic/clinic/internal/domain/consultation"
	"github.com/clinic/clinic/internal/platform/db"
	"github.com/clinic/clinic/internal/platform/httpapi"
)

// ConsultationReader loads a consultation by id. The consultation service
// has no read-by-id operation, so the viewer reads the store directly.
type ConsultationReader interface {
	FindByID(ctx context.Context, id int64) (*consultation.Consultation, error)
}

// Viewer builds prescription representations with the consultation, and
// through it the patient and doctor, embedded. The embedded consultation
// does not repeat the prescription.
type Viewer struct {
	consultations ConsultationReader
	views         *consultation.Viewer
}

func NewViewer(consultations ConsultationReader, views *consultation.Viewer) *Viewer {
	return &Viewer{consultations: consultations, views: views.WithoutPrescription()}
}

func (v *Viewer) lookup() *httpapi.Lookup[consultation.View] {
	if v == nil || v.consultations == nil {
		return httpapi.NewLookup[consultation.View](nil)
	}
	parents := v.views.Lookups()
	return httpapi.NewLookup[consultation.View](func(ctx context.Context, id int64) (*consultation.View, bool, error) {
		c, err := v.consultations.FindByID(ctx, id)
		if errors.Is(err, db.ErrNotFound) {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		view, err := v.views.ViewWith(ctx, c, parents)
		if err != nil {
			return nil, false, err
		}
		return view, true, nil
	})
}

func (v *Viewer) View(ctx context.Context, p *Prescription) (*View, error) {
	c, err := v.lookup().Get(ctx, p.ConsultationID)
	if err != nil {
		return nil, err
	}
	return &View{Prescription: p, Consultation: c}, nil
}

func (v *Viewer) ViewAll(ctx context.Context, items []*Prescription) ([]*View, error) {
	consultations := v.lookup()
	out := make([]*View, 0, len(items))
	for _, p := range items {
		c, err := consultations.Get(ctx, p.ConsultationID)
		if err != nil {
			return nil, err
		}
		out = append(out, &View{Prescription: p, Consultation: c})
	}
	return out, nil
}
