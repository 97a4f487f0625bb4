package http

import (
	"orderservice/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CorrelationHeader carries the per-request correlation token across service
// boundaries.
const CorrelationHeader = "X-Correlation-Id"

const correlationContextKey = "correlation_id"

// CorrelationMiddleware extracts the correlation token from the inbound
// request, generating one when absent, and echoes it back on the response so
// callers can trace the request across services.
func CorrelationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			correlationID := kernel.CorrelationIDFromString(ctx.Request().Header.Get(CorrelationHeader))

			ctx.Set(correlationContextKey, correlationID)
			ctx.Response().Header().Set(CorrelationHeader, correlationID.String())

			return next(ctx)
		}
	}
}

// correlationID reads the token placed by CorrelationMiddleware, minting a
// fresh one when the middleware is not installed.
func correlationID(ctx echo.Context) kernel.CorrelationID {
	if stored, ok := ctx.Get(correlationContextKey).(kernel.CorrelationID); ok {
		return stored
	}
	return kernel.NewCorrelationID()
}
