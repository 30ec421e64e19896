package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	staffIDKey   = contextKey("staffID")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// GetStaffIDFromContext retrieves the authenticated staff ID from the Gin context.
// It returns the staff ID and a boolean indicating if it was found.
func GetStaffIDFromContext(c *gin.Context) (string, bool) {
	staffIDVal, exists := c.Get(string(staffIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(staffIDKey)
		if ctxVal != nil {
			if staffID, ok := ctxVal.(string); ok {
				return staffID, true
			}
		}
		return "", false
	}

	staffID, ok := staffIDVal.(string)
	if !ok {
		return "", false
	}

	return staffID, true
}
