// Package app assembles the clinic services and their HTTP handlers on top
// of a store backend.
package app

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain/consultation"
	"github.com/clinic/clinic/internal/domain/doctor"
	"github.com/clinic/clinic/internal/domain/history"
	"github.com/clinic/clinic/internal/domain/patient"
	"github.com/clinic/clinic/internal/domain/prescription"
	"github.com/clinic/clinic/internal/domain/specialty"
	"github.com/clinic/clinic/internal/platform/httpapi"
)

type routeRegistrar interface {
	RegisterRoutes(api *echo.Group)
}

// App holds one service per entity. Services share nothing but the
// database behind their stores.
type App struct {
	Specialties   *specialty.Service
	Doctors       *doctor.Service
	Patients      *patient.Service
	Histories     *history.Service
	Consultations *consultation.Service
	Prescriptions *prescription.Service

	handlers []routeRegistrar
}

func New(stores *Stores, logger zerolog.Logger) *App {
	a := &App{
		Specialties:   specialty.NewService(stores.Specialties, logger),
		Doctors:       doctor.NewService(stores.Doctors, logger),
		Patients:      patient.NewService(stores.Patients, logger),
		Histories:     history.NewService(stores.Histories, logger),
		Consultations: consultation.NewService(stores.Consultations, logger),
		Prescriptions: prescription.NewService(stores.Prescriptions, logger),
	}

	doctorViews := doctor.NewViewer(a.Specialties)
	consultationViews := consultation.NewViewer(a.Patients, a.Doctors, doctorViews).
		WithPrescription(func(ctx context.Context, id int64) (interface{}, error) {
			return httpapi.One(a.Prescriptions.GetConsultationPrescription(ctx, id))
		})
	specialtyViews := specialty.NewViewer(func(ctx context.Context, id int64) (interface{}, error) {
		return httpapi.Many(a.Doctors.ListSpecialtyDoctors(ctx, id))
	})
	patientConsultations := consultationViews.WithoutPatient()
	patientViews := patient.NewViewer(
		func(ctx context.Context, id int64) (interface{}, error) {
			return httpapi.One(a.Histories.GetHistoryByPatient(ctx, id))
		},
		func(ctx context.Context, id int64) (interface{}, error) {
			items, err := a.Consultations.ListPatientConsultations(ctx, id)
			if err != nil {
				return nil, err
			}
			return httpapi.Many(patientConsultations.ViewAll(ctx, items))
		},
	)

	a.handlers = []routeRegistrar{
		specialty.NewHandler(a.Specialties, specialtyViews),
		doctor.NewHandler(a.Doctors, doctorViews),
		patient.NewHandler(a.Patients, patientViews),
		history.NewHandler(a.Histories, history.NewViewer(a.Patients)),
		consultation.NewHandler(a.Consultations, consultationViews),
		prescription.NewHandler(a.Prescriptions, prescription.NewViewer(stores.Consultations, consultationViews)),
	}
	return a
}

// RegisterRoutes mounts every resource group on api.
func (a *App) RegisterRoutes(api *echo.Group) {
	for _, h := range a.handlers {
		h.RegisterRoutes(api)
	}
}
