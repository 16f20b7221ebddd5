package consultation

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/civil"
	"github.com/clinic/clinic/internal/platform/httpapi"
)

type Handler struct {
	svc    *Service
	viewer *Viewer
}

func NewHandler(svc *Service, viewer *Viewer) *Handler {
	return &Handler{svc: svc, viewer: viewer}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/consultations", h.CreateConsultation)
	api.GET("/consultations", h.ListConsultations)
	api.GET("/patients/:id/consultations", h.ListPatientConsultations)
}

// consultationRequest accepts occurred_at with or without a zone; zone-less
// values are read as UTC.
type consultationRequest struct {
	OccurredAt civil.Time   `json:"occurred_at"`
	Reason     string       `json:"reason"`
	Diagnosis  *string      `json:"diagnosis"`
	PatientID  int64        `json:"patient_id"`
	Patient    *httpapi.Ref `json:"patient"`
	DoctorID   int64        `json:"doctor_id"`
	Doctor     *httpapi.Ref `json:"doctor"`
}

func (r *consultationRequest) consultation() *Consultation {
	c := &Consultation{
		OccurredAt: r.OccurredAt.Time,
		Reason:     r.Reason,
		Diagnosis:  r.Diagnosis,
		PatientID:  httpapi.RefID(r.PatientID, r.Patient),
	}
	if id := httpapi.RefID(r.DoctorID, r.Doctor); id != 0 {
		c.DoctorID = &id
	}
	return c
}

func (h *Handler) CreateConsultation(c echo.Context) error {
	var req consultationRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	created, err := h.svc.CreateConsultation(ctx, req.consultation())
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, created)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *Handler) ListConsultations(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.svc.ListConsultations(ctx)
	if err != nil {
		return err
	}
	views, err := h.viewer.ViewAll(ctx, items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) ListPatientConsultations(c echo.Context) error {
	patientID, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	items, err := h.svc.ListPatientConsultations(ctx, patientID)
	if err != nil {
		return err
	}
	views, err := h.viewer.ViewAll(ctx, items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
