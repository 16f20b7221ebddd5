package history

import (
	"context"

	"github.com/clinic/clinic/internal/domain/patient"
	"github.com/clinic/clinic/internal/platform/httpapi"
)

type PatientReader interface {
	GetPatient(ctx context.Context, id int64) (*patient.Patient, bool, error)
}

// Viewer builds history representations with the patient embedded.
type Viewer struct {
	patients PatientReader
}

func NewViewer(patients PatientReader) *Viewer {
	return &Viewer{patients: patients}
}

func (v *Viewer) lookup() *httpapi.Lookup[patient.Patient] {
	if v == nil || v.patients == nil {
		return httpapi.NewLookup[patient.Patient](nil)
	}
	return httpapi.NewLookup[patient.Patient](v.patients.GetPatient)
}

func (v *Viewer) View(ctx context.Context, h *History) (*View, error) {
	p, err := v.lookup().Get(ctx, h.PatientID)
	if err != nil {
		return nil, err
	}
	return &View{History: h, Patient: p}, nil
}

func (v *Viewer) ViewAll(ctx context.Context, items []*History) ([]*View, error) {
	patients := v.lookup()
	out := make([]*View, 0, len(items))
	for _, h := range items {
		p, err := patients.Get(ctx, h.PatientID)
		if err != nil {
			return nil, err
		}
		out = append(out, &View{History: h, Patient: p})
	}
	return out, nil
}
