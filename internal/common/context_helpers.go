// File: internal/common/context_helpers.go
package common

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// GetRequestIDFromContext retrieves the request ID set by the logging middleware.
func GetRequestIDFromContext(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}

// WithOptionalTimeout bounds ctx by d. A non-positive d leaves ctx untouched, so an
// unconfigured timeout keeps whatever deadline the caller already has.
func WithOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
