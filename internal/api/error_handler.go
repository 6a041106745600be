package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/pkg/messages"
)

// errorEnvelope is the canonical envelope for all API errors.
type errorEnvelope struct {
	Code    int                 `json:"code"`
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps each domain error kind to its HTTP status code.
//   - Renders field-scoped validation failures under "errors".
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		env := resolveError(err, log, c)
		_ = c.JSON(env.Code, env)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) errorEnvelope {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return envelopeFor(he.Code, fmt.Sprintf("%v", he.Message))
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return errorEnvelope{
			Code:    http.StatusBadRequest,
			Status:  http.StatusText(http.StatusBadRequest),
			Message: "validation failed",
			Errors:  verr.Fields,
		}
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return envelopeFor(http.StatusNotFound, messages.Get(nf.Resource+".notfound.id", nf.ID))
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return envelopeFor(http.StatusUnauthorized, messages.Get("error.auth.failed"))
	case errors.Is(err, domain.ErrTokenExpired):
		return envelopeFor(http.StatusUnauthorized, messages.Get("error.jwt.expired"))
	case errors.Is(err, domain.ErrTokenInvalid):
		return envelopeFor(http.StatusUnauthorized, messages.Get("error.jwt.invalid"))
	case errors.Is(err, domain.ErrAccessDenied):
		return envelopeFor(http.StatusForbidden, messages.Get("error.access.denied"))
	}

	// Unexpected error: log the real cause, return a sanitized message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return envelopeFor(http.StatusInternalServerError, messages.Get("error.server.internal"))
}

func envelopeFor(code int, message string) errorEnvelope {
	return errorEnvelope{Code: code, Status: http.StatusText(code), Message: message}
}
