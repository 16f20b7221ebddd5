package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/db"
)

// StatusFor returns the HTTP status ErrorHandler uses for err.
func StatusFor(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders handler errors as {"message": ...}. echo.HTTPError
// keeps its status, db.ErrNotFound becomes 404 and every other failure,
// constraint violations included, becomes 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := StatusFor(err)
		msg := "internal server error"

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			msg = fmt.Sprint(he.Message)
		case errors.Is(err, db.ErrNotFound):
			msg = err.Error()
		case errors.Is(err, db.ErrConstraintViolation):
			msg = err.Error()
			logger.Warn().Err(err).Str("path", c.Path()).Msg("write rejected by store")
		default:
			rid, _ := c.Get("request_id").(string)
			logger.Error().Err(err).Str("request_id", rid).Str("path", c.Path()).Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]string{"message": msg})
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}
