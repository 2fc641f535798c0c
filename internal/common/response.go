// File: internal/common/response.go
package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondWithError sends a JSON error response and aborts the chain.
// Errors that are not *APIError are rendered as a 500 carrying the error text.
func RespondWithError(c *gin.Context, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		apiErr = ErrInternalServer.WithDetail(err.Error())
	}
	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

// RespondOK sends a 200 OK response with body rendered as-is.
func RespondOK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// BindJSON binds the request body into req, rendering 422 on validation failures
// and 400 on malformed bodies. It reports whether the handler may continue.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			RespondWithError(c, NewValidationAPIError(FormatValidationErrors(ve)))
			return false
		}
		RespondWithError(c, ErrBadRequest.WithDetail(err.Error()))
		return false
	}
	return true
}
