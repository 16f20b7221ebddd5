package specialty

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
	api.POST("/specialties", h.CreateSpecialty)
	api.GET("/specialties", h.ListSpecialties)
	api.GET("/specialties/:id", h.GetSpecialty)
	api.PUT("/specialties/:id", h.UpdateSpecialty)
	api.DELETE("/specialties/:id", h.DeleteSpecialty)
}

func (h *Handler) CreateSpecialty(c echo.Context) error {
	var sp Specialty
	if err := httpapi.Bind(c, &sp); err != nil {
		return err
	}
	ctx := c.Request().Context()
	created, err := h.svc.CreateSpecialty(ctx, &sp)
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, created)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *Handler) ListSpecialties(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.svc.ListSpecialties(ctx)
	if err != nil {
		return err
	}
	views, err := h.viewer.ViewAll(ctx, items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetSpecialty(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	sp, found, err := h.svc.GetSpecialty(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "specialty not found")
	}
	view, err := h.viewer.View(ctx, sp)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateSpecialty(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	var sp Specialty
	if err := httpapi.Bind(c, &sp); err != nil {
		return err
	}
	ctx := c.Request().Context()
	updated, err := h.svc.UpdateSpecialty(ctx, id, &sp)
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, updated)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) DeleteSpecialty(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteSpecialty(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
