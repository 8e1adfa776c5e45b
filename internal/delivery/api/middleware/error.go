package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bootwatcher/internal/delivery/api/response"
	domainerrors "bootwatcher/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// APIPrefix marks the routes answered with the v1 envelope
const APIPrefix = "/api/v1"

const routeNotFoundMessage = "Route not found"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Unversioned
// routes get the flat {error} body, /api/v1 routes get the envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	legacy := !strings.HasPrefix(c.Request().URL.Path, APIPrefix)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.handleEchoError(c, httpErr, legacy)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if legacy {
			_ = response.Legacy(c, appErr.HTTPCode(), appErr.Message())

			return
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if legacy {
		_ = response.Legacy(c, domainerrors.ErrInternalError.HTTPCode(), domainerrors.ErrInternalError.Message())

		return
	}
	_ = response.HandleAppError(c, domainerrors.ErrInternalError)
}

func (m *ErrorMiddleware) handleEchoError(c echo.Context, httpErr *echo.HTTPError, legacy bool) {
	// Unknown routes and unknown methods on known routes are both "not found".
	if httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed {
		if legacy {
			_ = response.Legacy(c, http.StatusNotFound, routeNotFoundMessage)

			return
		}
		_ = response.NotFound(c, "NOT_FOUND", routeNotFoundMessage)

		return
	}

	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok {
		message = msg
	}

	if legacy {
		_ = response.Legacy(c, httpErr.Code, message)

		return
	}
	_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
}
