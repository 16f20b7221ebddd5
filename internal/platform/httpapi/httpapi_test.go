package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRefID(t *testing.T) {
	if got := RefID(3, nil); got != 3 {
		t.Errorf("expected flat id 3, got %d", got)
	}
	if got := RefID(3, &Ref{ID: 8}); got != 8 {
		t.Errorf("expected nested id 8, got %d", got)
	}
	if got := RefID(3, &Ref{}); got != 3 {
		t.Errorf("expected empty nested ref to fall back to 3, got %d", got)
	}
}

func TestParseID(t *testing.T) {
	e := echo.New()
	for _, tc := range []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"x", 0, true},
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(tc.raw)

		got, err := ParseID(c, "id")
		if tc.wantErr {
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Errorf("%q: expected 400, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %d, %v", tc.raw, got, err)
		}
	}
}

func TestLookup_FetchesOnce(t *testing.T) {
	calls := 0
	name := "Cardiology"
	l := NewLookup[string](func(_ context.Context, id int64) (*string, bool, error) {
		calls++
		if id == 1 {
			return &name, true, nil
		}
		return nil, false, nil
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		v, err := l.Get(ctx, 1)
		if err != nil || v == nil || *v != name {
			t.Fatalf("unexpected lookup result %v, %v", v, err)
		}
	}
	if v, _ := l.Get(ctx, 2); v != nil {
		t.Errorf("expected nil for absent id, got %v", *v)
	}
	l.Get(ctx, 2)
	if v, _ := l.Get(ctx, 0); v != nil {
		t.Error("expected nil for zero id")
	}
	if calls != 2 {
		t.Errorf("expected 2 fetches, got %d", calls)
	}
}

func TestBind(t *testing.T) {
	e := echo.New()
	type body struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	for _, tc := range []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", `{"name":"Ana","age":40}`, false},
		{"syntax", `{"name":`, true},
		{"type", `{"age":"forty"}`, true},
	} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		var b body
		err := Bind(c, &b)
		if !tc.wantErr {
			if err != nil || b.Name != "Ana" || b.Age != 40 {
				t.Errorf("%s: got %+v, err %v", tc.name, b, err)
			}
			continue
		}
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", tc.name, err)
		}
		msg, _ := he.Message.(string)
		if msg == "" || strings.Contains(msg, "code=") || strings.Contains(msg, "internal=") {
			t.Errorf("%s: message should be the binder's text only, got %q", tc.name, he.Message)
		}
		if he.Internal != nil {
			t.Errorf("%s: internal error should be dropped", tc.name)
		}
	}
}

func TestMany(t *testing.T) {
	v, err := Many[int](nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := v.([]int); !ok || got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", v)
	}
	boom := errors.New("boom")
	if v, err := Many([]int{1}, boom); v != nil || err != boom {
		t.Errorf("expected error passthrough, got %v, %v", v, err)
	}
}

func TestOne(t *testing.T) {
	n := 4
	if v, err := One(&n, true, nil); err != nil || v.(*int) != &n {
		t.Errorf("expected record, got %v, %v", v, err)
	}
	if v, err := One(&n, false, nil); v != nil || err != nil {
		t.Errorf("expected untyped nil for absent record, got %#v, %v", v, err)
	}
}
