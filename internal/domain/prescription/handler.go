package prescription

import (
	"net/http"

	"github.com/labstack/echo/v4"

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
	api.POST("/prescriptions", h.CreatePrescription)
	api.GET("/prescriptions", h.ListPrescriptions)
	api.GET("/prescriptions/:id", h.GetPrescription)
	api.PUT("/prescriptions/:id", h.UpdatePrescription)
	api.DELETE("/prescriptions/:id", h.DeletePrescription)
}

type prescriptionRequest struct {
	Medication     *string      `json:"medication"`
	Dosage         *string      `json:"dosage"`
	ConsultationID int64        `json:"consultation_id"`
	Consultation   *httpapi.Ref `json:"consultation"`
}

func (r *prescriptionRequest) prescription() *Prescription {
	return &Prescription{
		Medication:     r.Medication,
		Dosage:         r.Dosage,
		ConsultationID: httpapi.RefID(r.ConsultationID, r.Consultation),
	}
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var req prescriptionRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	created, err := h.svc.CreatePrescription(ctx, req.prescription())
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, created)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.svc.ListPrescriptions(ctx)
	if err != nil {
		return err
	}
	views, err := h.viewer.ViewAll(ctx, items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetPrescription(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	p, found, err := h.svc.GetPrescription(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
	view, err := h.viewer.View(ctx, p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdatePrescription(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req prescriptionRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	p, err := h.svc.UpdatePrescription(ctx, id, req.prescription())
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) DeletePrescription(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeletePrescription(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
