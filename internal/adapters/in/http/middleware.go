package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderTraceID is the request correlation header. A missing or blank value
// gets a generated UUID; the effective id is always echoed on the response.
const HeaderTraceID = "X-Trace-Id"

// telegramUserAgent identifies requests relayed by the Telegram platform.
const telegramUserAgent = "TelegramBot"

// TraceIDMiddleware propagates the caller's trace id or generates one.
func TraceIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			traceID := ctx.Request().Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx.Response().Header().Set(HeaderTraceID, traceID)
			return next(ctx)
		}
	}
}

// TelegramOnlyMiddleware rejects requests whose User-Agent does not identify
// the Telegram platform. The health endpoint stays open for probes.
func TelegramOnlyMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Path() == "/health" {
				return next(ctx)
			}

			if !strings.Contains(ctx.Request().UserAgent(), telegramUserAgent) {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Message: "requests are accepted from the Telegram platform only",
					TraceID: ctx.Response().Header().Get(HeaderTraceID),
				})
			}

			return next(ctx)
		}
	}
}
