package patient

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
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := httpapi.Bind(c, &p); err != nil {
		return err
	}
	ctx := c.Request().Context()
	created, err := h.svc.CreatePatient(ctx, &p)
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, created)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *Handler) ListPatients(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.svc.ListPatients(ctx)
	if err != nil {
		return err
	}
	views, err := h.viewer.ViewAll(ctx, items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	p, found, err := h.svc.GetPatient(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	view, err := h.viewer.View(ctx, p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	var p Patient
	if err := httpapi.Bind(c, &p); err != nil {
		return err
	}
	ctx := c.Request().Context()
	updated, err := h.svc.UpdatePatient(ctx, id, &p)
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, updated)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
