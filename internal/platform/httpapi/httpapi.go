// Package httpapi holds the small pieces shared by every resource handler:
// body binding, id parsing and parent reference decoding.
package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Ref is a nested reference to a parent record in a request body,
// e.g. {"specialty": {"id": 3}}.
type Ref struct {
	ID int64 `json:"id"`
}

// RefID returns the nested reference id when present, the flat id otherwise.
func RefID(flat int64, nested *Ref) int64 {
	if nested != nil && nested.ID != 0 {
		return nested.ID
	}
	return flat
}

// ParseID reads the positive integer path parameter name.
func ParseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// Bind decodes the request body into v. Failures keep the binder's status
// and message but drop the internal error, so clients see
// {"message": "invalid date ..."} rather than echo's debug string.
func Bind(c echo.Context, v interface{}) error {
	err := c.Bind(v)
	if err == nil {
		return nil
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return echo.NewHTTPError(he.Code, fmt.Sprint(he.Message))
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
