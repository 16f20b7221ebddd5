package history

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/domain/patient"
)

type fakePatients map[int64]*patient.Patient

func (f fakePatients) GetPatient(_ context.Context, id int64) (*patient.Patient, bool, error) {
	p, ok := f[id]
	return p, ok, nil
}

func newTestHandler() (*Handler, *echo.Echo) {
	patients := fakePatients{4: {ID: 4, FirstName: "Luis", LastName: "Paz", NationalID: "0912345678"}}
	return NewHandler(newTestService(), NewViewer(patients)), echo.New()
}

func TestHandler_CreateHistory(t *testing.T) {
	h, e := newTestHandler()

	body := `{"description":"asthma","date":"2024-03-14T00:00:00Z","patient":{"id":4}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/histories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"national_id":"0912345678"`) {
		t.Errorf("expected embedded patient, got %s", rec.Body.String())
	}
}

func TestHandler_CreateHistory_CalendarDate(t *testing.T) {
	h, e := newTestHandler()

	body := `{"date":"2024-05-01","patient_id":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/histories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"date":"2024-05-01"`) {
		t.Errorf("expected date-only rendering, got %s", rec.Body.String())
	}
}

func TestHandler_CreateHistory_BadDate(t *testing.T) {
	h, e := newTestHandler()

	body := `{"date":"01/05/2024","patient_id":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/histories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.CreateHistory(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if msg, _ := he.Message.(string); !strings.Contains(msg, "YYYY-MM-DD") || strings.Contains(msg, "code=") {
		t.Errorf("unexpected message %q", he.Message)
	}
}

func TestHandler_GetPatientHistory(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateHistory(context.Background(), &History{Date: day, PatientID: 4})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.GetPatientHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetPatientHistory_None(t *testing.T) {
	h, e := newTestHandler()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("4")

	err := h.GetPatientHistory(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_ListHistories_Empty(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := h.ListHistories(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %s", rec.Body.String())
	}
}

func TestHandler_DeleteHistory(t *testing.T) {
	h, e := newTestHandler()
	h.svc.CreateHistory(context.Background(), &History{Date: day, PatientID: 4})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeleteHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
