package consultation

import (
	"context"

	"github.com/clinic/clinic/internal/domain/doctor"
	"github.com/clinic/clinic/internal/domain/patient"
	"github.com/clinic/clinic/internal/platform/httpapi"
)

type PatientReader interface {
	GetPatient(ctx context.Context, id int64) (*patient.Patient, bool, error)
}

type DoctorReader interface {
	GetDoctor(ctx context.Context, id int64) (*doctor.Doctor, bool, error)
}

// Viewer builds consultation representations with the patient, the doctor
// (and the doctor's specialty) and the prescription embedded.
type Viewer struct {
	patients     PatientReader
	doctors      DoctorReader
	doctorViews  *doctor.Viewer
	prescription httpapi.ChildrenFunc
}

func NewViewer(patients PatientReader, doctors DoctorReader, doctorViews *doctor.Viewer) *Viewer {
	return &Viewer{patients: patients, doctors: doctors, doctorViews: doctorViews}
}

// WithPrescription returns a viewer that embeds the prescription loaded by fn.
func (v *Viewer) WithPrescription(fn httpapi.ChildrenFunc) *Viewer {
	if v == nil {
		return nil
	}
	cp := *v
	cp.prescription = fn
	return &cp
}

// WithoutPatient returns a viewer for consultations listed under their patient.
func (v *Viewer) WithoutPatient() *Viewer {
	if v == nil {
		return nil
	}
	cp := *v
	cp.patients = nil
	return &cp
}

// WithoutPrescription returns a viewer for a consultation embedded in its
// prescription.
func (v *Viewer) WithoutPrescription() *Viewer {
	if v == nil {
		return nil
	}
	cp := *v
	cp.prescription = nil
	return &cp
}

// Lookups memoises parent records while one response is built.
type Lookups struct {
	patients *httpapi.Lookup[patient.Patient]
	doctors  *httpapi.Lookup[doctor.View]
}

func (v *Viewer) Lookups() *Lookups {
	l := &Lookups{
		patients: httpapi.NewLookup[patient.Patient](nil),
		doctors:  httpapi.NewLookup[doctor.View](nil),
	}
	if v == nil {
		return l
	}
	if v.patients != nil {
		l.patients = httpapi.NewLookup[patient.Patient](v.patients.GetPatient)
	}
	if v.doctors != nil {
		l.doctors = httpapi.NewLookup[doctor.View](v.doctorView)
	}
	return l
}

func (v *Viewer) doctorView(ctx context.Context, id int64) (*doctor.View, bool, error) {
	d, found, err := v.doctors.GetDoctor(ctx, id)
	if err != nil || !found {
		return nil, found, err
	}
	view, err := v.doctorViews.View(ctx, d)
	if err != nil {
		return nil, false, err
	}
	return view, true, nil
}

// ViewWith renders c using already opened lookups.
func (v *Viewer) ViewWith(ctx context.Context, c *Consultation, l *Lookups) (*View, error) {
	p, err := l.patients.Get(ctx, c.PatientID)
	if err != nil {
		return nil, err
	}
	var d *doctor.View
	if c.DoctorID != nil {
		if d, err = l.doctors.Get(ctx, *c.DoctorID); err != nil {
			return nil, err
		}
	}
	view := &View{Consultation: c, Patient: p, Doctor: d}
	if v != nil && v.prescription != nil {
		if view.Prescription, err = v.prescription(ctx, c.ID); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (v *Viewer) View(ctx context.Context, c *Consultation) (*View, error) {
	return v.ViewWith(ctx, c, v.Lookups())
}

func (v *Viewer) ViewAll(ctx context.Context, items []*Consultation) ([]*View, error) {
	l := v.Lookups()
	out := make([]*View, 0, len(items))
	for _, c := range items {
		view, err := v.ViewWith(ctx, c, l)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}
