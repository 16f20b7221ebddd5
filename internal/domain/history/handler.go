package history

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
	api.POST("/histories", h.CreateHistory)
	api.GET("/histories", h.ListHistories)
	api.GET("/histories/:id", h.GetHistory)
	api.PUT("/histories/:id", h.UpdateHistory)
	api.DELETE("/histories/:id", h.DeleteHistory)
	api.GET("/patients/:id/history", h.GetPatientHistory)
}

type historyRequest struct {
	Description *string      `json:"description"`
	Date        civil.Date   `json:"date"`
	PatientID   int64        `json:"patient_id"`
	Patient     *httpapi.Ref `json:"patient"`
}

func (r *historyRequest) history() *History {
	return &History{
		Description: r.Description,
		Date:        r.Date,
		PatientID:   httpapi.RefID(r.PatientID, r.Patient),
	}
}

func (h *Handler) CreateHistory(c echo.Context) error {
	var req historyRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	created, err := h.svc.CreateHistory(ctx, req.history())
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, created)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *Handler) ListHistories(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.svc.ListHistories(ctx)
	if err != nil {
		return err
	}
	views, err := h.viewer.ViewAll(ctx, items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetHistory(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	hist, found, err := h.svc.GetHistory(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "history not found")
	}
	view, err := h.viewer.View(ctx, hist)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) GetPatientHistory(c echo.Context) error {
	patientID, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	hist, found, err := h.svc.GetHistoryByPatient(ctx, patientID)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "history not found")
	}
	view, err := h.viewer.View(ctx, hist)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateHistory(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req historyRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	updated, err := h.svc.UpdateHistory(ctx, id, req.history())
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, updated)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) DeleteHistory(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteHistory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
