package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/domain/specialty"
)

type fakeSpecialties map[int64]*specialty.Specialty

func (f fakeSpecialties) GetSpecialty(_ context.Context, id int64) (*specialty.Specialty, bool, error) {
	sp, ok := f[id]
	return sp, ok, nil
}

func newTestHandler() (*Handler, *echo.Echo) {
	specialties := fakeSpecialties{
		1: {ID: 1, Name: "Cardiology"},
		2: {ID: 2, Name: "Neurology"},
	}
	return NewHandler(newTestService(), NewViewer(specialties)), echo.New()
}

func TestHandler_CreateDoctor_FlatReference(t *testing.T) {
	h, e := newTestHandler()

	body := `{"first_name":"Ana","last_name":"Ruiz","specialty_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateDoctor(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var out struct {
		ID        int64               `json:"id"`
		Specialty specialty.Specialty `json:"specialty"`
	}
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.ID != 1 || out.Specialty.Name != "Cardiology" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_CreateDoctor_NestedReference(t *testing.T) {
	h, e := newTestHandler()

	body := `{"first_name":"Ana","last_name":"Ruiz","specialty":{"id":2}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateDoctor(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"name":"Neurology"`) {
		t.Errorf("expected embedded specialty, got %s", rec.Body.String())
	}
}

func TestHandler_GetDoctor_NotFound(t *testing.T) {
	h, e := newTestHandler()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("4")

	err := h.GetDoctor(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_ListDoctors(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()
	h.svc.CreateDoctor(ctx, &Doctor{FirstName: "A", LastName: "A", SpecialtyID: 1})
	h.svc.CreateDoctor(ctx, &Doctor{FirstName: "B", LastName: "B", SpecialtyID: 1})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out []map[string]any
	json.Unmarshal(rec.Body.Bytes(), &out)
	if len(out) != 2 {
		t.Fatalf("expected 2 doctors, got %s", rec.Body.String())
	}
}

func TestHandler_ListDoctors_Empty(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %s", rec.Body.String())
	}
}

func TestHandler_UpdateDoctor(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateDoctor(context.Background(), &Doctor{FirstName: "A", LastName: "A", SpecialtyID: 1})

	body := `{"first_name":"A","last_name":"B","specialty":{"id":2}}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdateDoctor(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"specialty_id":2`) {
		t.Errorf("expected specialty 2, got %s", rec.Body.String())
	}
}

func TestHandler_DeleteDoctor(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateDoctor(context.Background(), &Doctor{FirstName: "A", LastName: "A", SpecialtyID: 1})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeleteDoctor(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
