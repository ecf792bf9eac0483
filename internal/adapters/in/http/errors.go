package http

import (
	"errors"
	"net/http"

	"appraise/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates a domain error into an HTTP status and a JSON body
// carrying the message and the request's trace id. Unexpected errors are
// logged with their detail and answered with a generic 500 so internals never
// leak to callers.
func (s *Server) respondError(ctx echo.Context, err error) error {
	traceID := ctx.Response().Header().Get(HeaderTraceID)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error(), TraceID: traceID})
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error(), TraceID: traceID})
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error(), TraceID: traceID})
	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"traceId", traceID,
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "internal server error",
			TraceID: traceID,
		})
	}
}
