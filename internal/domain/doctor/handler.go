package doctor

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
	api.POST("/doctors", h.CreateDoctor)
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.PUT("/doctors/:id", h.UpdateDoctor)
	api.DELETE("/doctors/:id", h.DeleteDoctor)
}

// doctorRequest accepts the specialty as "specialty_id" or {"specialty": {"id": n}}.
type doctorRequest struct {
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Phone       *string      `json:"phone"`
	SpecialtyID int64        `json:"specialty_id"`
	Specialty   *httpapi.Ref `json:"specialty"`
}

func (r *doctorRequest) doctor() *Doctor {
	return &Doctor{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		SpecialtyID: httpapi.RefID(r.SpecialtyID, r.Specialty),
	}
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var req doctorRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	d, err := h.svc.CreateDoctor(ctx, req.doctor())
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, d)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	ctx := c.Request().Context()
	doctors, err := h.svc.ListDoctors(ctx)
	if err != nil {
		return err
	}
	views, err := h.viewer.ViewAll(ctx, doctors)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	d, found, err := h.svc.GetDoctor(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	view, err := h.viewer.View(ctx, d)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req doctorRequest
	if err := httpapi.Bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	d, err := h.svc.UpdateDoctor(ctx, id, req.doctor())
	if err != nil {
		return err
	}
	view, err := h.viewer.View(ctx, d)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) DeleteDoctor(c echo.Context) error {
	id, err := httpapi.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteDoctor(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
