package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinic/clinic/internal/platform/middleware"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	a, b := newTestApp(t)
	return NewServer(a, b, ServerOptions{
		Logger:      zerolog.Nop(),
		CORSOrigins: []string{"http://localhost:3000"},
		BodyLimit:   "1M",
		RateLimit:   middleware.DefaultRateLimitConfig(),
		Version:     "test",
	})
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", decode(t, rec)["version"])

	rec = do(t, e, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "sqlite", body["driver"])
}

func TestServer_ClinicFlow(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/api/v1/specialties", `{"name":"Cardiology"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(1), decode(t, rec)["id"])

	rec = do(t, e, http.MethodPost, "/api/v1/doctors", `{"first_name":"A","last_name":"B","specialty":{"id":1}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	doc := decode(t, rec)
	assert.Equal(t, float64(1), doc["id"])
	require.IsType(t, map[string]interface{}{}, doc["specialty"])
	assert.Equal(t, "Cardiology", doc["specialty"].(map[string]interface{})["name"])

	rec = do(t, e, http.MethodPost, "/api/v1/patients", `{"first_name":"Ana","last_name":"Ruiz","age":40,"national_id":"0012345678"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/consultations",
		`{"occurred_at":"2024-03-01T10:00:00Z","reason":"checkup","patient_id":1,"doctor_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(1), decode(t, rec)["id"])

	rec = do(t, e, http.MethodPost, "/api/v1/prescriptions", `{"medication":"Aspirin","dosage":"100mg","consultation":{"id":1}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodDelete, "/api/v1/specialties/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/doctors/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/consultations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Nil(t, list[0]["doctor_id"])
	assert.NotContains(t, list[0], "doctor")
	assert.Equal(t, "checkup", list[0]["reason"])

	rec = do(t, e, http.MethodGet, "/api/v1/prescriptions/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rx := decode(t, rec)
	require.IsType(t, map[string]interface{}{}, rx["consultation"])
	assert.Equal(t, float64(1), rx["consultation"].(map[string]interface{})["id"])
}

func TestServer_EmbeddedChildren(t *testing.T) {
	e := newTestServer(t)
	for _, step := range []struct{ path, body string }{
		{"/api/v1/specialties", `{"name":"Cardiology"}`},
		{"/api/v1/doctors", `{"first_name":"A","last_name":"B","specialty_id":1}`},
		{"/api/v1/patients", `{"first_name":"Ana","last_name":"Ruiz","age":40,"national_id":"0012345678"}`},
		{"/api/v1/histories", `{"description":"asthma","date":"2024-05-01","patient_id":1}`},
		{"/api/v1/consultations", `{"occurred_at":"2024-05-02T09:30:00","reason":"checkup","patient_id":1,"doctor_id":1}`},
		{"/api/v1/prescriptions", `{"medication":"Aspirin","consultation_id":1}`},
	} {
		rec := do(t, e, http.MethodPost, step.path, step.body)
		require.Equal(t, http.StatusCreated, rec.Code, "%s: %s", step.path, rec.Body.String())
	}

	rec := do(t, e, http.MethodGet, "/api/v1/specialties/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sp struct {
		Doctors []map[string]interface{} `json:"doctors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sp))
	require.Len(t, sp.Doctors, 1)
	assert.Equal(t, "A", sp.Doctors[0]["first_name"])
	assert.NotContains(t, sp.Doctors[0], "specialty")

	rec = do(t, e, http.MethodGet, "/api/v1/patients/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pt struct {
		History       map[string]interface{}   `json:"history"`
		Consultations []map[string]interface{} `json:"consultations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pt))
	assert.Equal(t, "2024-05-01", pt.History["date"])
	assert.NotContains(t, pt.History, "patient")
	require.Len(t, pt.Consultations, 1)
	assert.Equal(t, "2024-05-02T09:30:00Z", pt.Consultations[0]["occurred_at"])
	assert.NotContains(t, pt.Consultations[0], "patient")
	assert.Contains(t, pt.Consultations[0], "doctor")
	require.IsType(t, map[string]interface{}{}, pt.Consultations[0]["prescription"])
	assert.Equal(t, "Aspirin", pt.Consultations[0]["prescription"].(map[string]interface{})["medication"])

	rec = do(t, e, http.MethodGet, "/api/v1/prescriptions/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rx := decode(t, rec)
	require.IsType(t, map[string]interface{}{}, rx["consultation"])
	embedded := rx["consultation"].(map[string]interface{})
	assert.Contains(t, embedded, "patient")
	assert.NotContains(t, embedded, "prescription")

	rec = do(t, e, http.MethodGet, "/api/v1/patients", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var patients []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patients))
	require.Len(t, patients, 1)
	assert.Contains(t, patients[0], "consultations")
}

func TestServer_ErrorMapping(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/v1/patients/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodDelete, "/api/v1/patients/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodPut, "/api/v1/specialties/7", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/patients/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/v1/patients", `{"first_name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	patient := `{"first_name":"Ana","last_name":"Ruiz","age":40,"national_id":"0012345678"}`
	rec = do(t, e, http.MethodPost, "/api/v1/patients", patient)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, e, http.MethodPost, "/api/v1/patients", patient)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode(t, rec)["message"], "constraint violation")
}

func TestServer_EmptyLists(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{
		"/api/v1/specialties",
		"/api/v1/doctors",
		"/api/v1/patients",
		"/api/v1/histories",
		"/api/v1/consultations",
		"/api/v1/prescriptions",
	} {
		rec := do(t, e, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}
}

func TestServer_Metrics(t *testing.T) {
	e := newTestServer(t)
	do(t, e, http.MethodGet, "/api/v1/specialties", "")

	rec := do(t, e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
