// File: internal/middleware/error.go
package middleware

import (
	"net/http"

	"caffind_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders errors attached with c.Error in the {"detail": ...} shape.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		ginErr := c.Errors.Last()
		if apiErr, ok := common.IsAPIError(ginErr.Err); ok {
			c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
			return
		}
		logger.Error("Unhandled application error",
			zap.Error(ginErr.Err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", common.GetRequestIDFromContext(c)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, common.ErrInternalServer.WithDetail(ginErr.Err.Error()))
	}
}

// NoRoute renders 404 for unknown paths.
func NoRoute(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, common.ErrNotFound)
}

// NoMethod renders 405 for known paths hit with the wrong method.
func NoMethod(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, common.ErrMethodNotAllowed)
}
