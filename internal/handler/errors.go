package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// ErrorMessage returns the fixed message for an HTTP status code
func ErrorMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	case http.StatusInternalServerError:
		return "server error"
	default:
		return strings.ToLower(http.StatusText(code))
	}
}

// NewErrorHandler renders every error returned by a handler or middleware
// as an ErrorResponse. Server errors are logged with their cause.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, ErrorResponse{
				Success: false,
				Error:   code,
				Message: ErrorMessage(code),
			})
		}
		if err != nil {
			log.Error("failed to write error response", zap.Error(err))
		}
	}
}

// fail wraps err in an HTTP error with the given status, keeping err as the
// internal cause for logging.
func fail(code int, err error) error {
	return echo.NewHTTPError(code).SetInternal(err)
}
