package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to status codes and renders {"error": "<message>"}. Unexpected
// errors are logged and reported as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Action failures wrap the upstream cause, so they are checked before
	// the generic upstream mapping.
	switch {
	case errors.Is(err, domain.ErrEnrollFailed):
		logUpstream(log, c, err)
		return http.StatusBadGateway, "Enroll failed"
	case errors.Is(err, domain.ErrCancelFailed):
		logUpstream(log, c, err)
		return http.StatusBadGateway, "Could not cancel enrollment"
	case errors.Is(err, domain.ErrActionInProgress):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidEmployeeID), errors.Is(err, domain.ErrInvalidMode):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotPoolMember):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "session expired"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	// Transport timeouts also wrap ErrUpstream.
	case errors.Is(err, context.DeadlineExceeded):
		logUpstream(log, c, err)
		return http.StatusGatewayTimeout, "commute api timed out"
	case errors.Is(err, domain.ErrUpstream):
		logUpstream(log, c, err)
		return http.StatusBadGateway, "commute api unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func logUpstream(log zerolog.Logger, c echo.Context, err error) {
	log.Warn().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("commute api call failed")
}
