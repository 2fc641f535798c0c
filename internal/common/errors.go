// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// APIError is the error body every endpoint renders: {"detail": ...}.
// Detail is a human readable string, or a field->message map for validation failures.
type APIError struct {
	StatusCode int         `json:"-"`
	Detail     interface{} `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: StatusCode=%d, Detail=%v", e.StatusCode, e.Detail)
}

func NewAPIError(statusCode int, detail interface{}) *APIError {
	return &APIError{StatusCode: statusCode, Detail: detail}
}

// WithDetail returns a copy of e carrying detail. The package level errors are shared
// between requests and are never modified.
func (e *APIError) WithDetail(detail interface{}) *APIError {
	return &APIError{StatusCode: e.StatusCode, Detail: detail}
}

var (
	ErrBadRequest       = NewAPIError(http.StatusBadRequest, "Bad Request")
	ErrUnauthorized     = NewAPIError(http.StatusUnauthorized, "Unauthorized")
	ErrNotFound         = NewAPIError(http.StatusNotFound, "Not Found")
	ErrMethodNotAllowed = NewAPIError(http.StatusMethodNotAllowed, "Method Not Allowed")
	ErrInternalServer   = NewAPIError(http.StatusInternalServerError, "Internal Server Error")
)

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func NewValidationAPIError(details map[string]string) *APIError {
	return &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Detail:     details,
	}
}

// FormatValidationErrors converts validator.ValidationErrors into a map keyed by JSON field name.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMap := make(map[string]string)
	for _, e := range errs {
		field := fieldName(e)
		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("The %s field is required.", field)
		case "min":
			message = fmt.Sprintf("The %s field must be at least %s characters long.", field, e.Param())
		case "max":
			message = fmt.Sprintf("The %s field may not be greater than %s characters.", field, e.Param())
		case "oneof":
			message = fmt.Sprintf("The %s field must be one of the following values: %s.", field, e.Param())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", field, e.Tag())
		}
		errorMap[field] = message
	}
	return errorMap
}

// fieldName drops the struct name from the namespace (TranslateRequest.target,
// ChatRequest.history[0].role) leaving the path a client sent.
func fieldName(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		ns = e.Field()
	}
	return ns
}

// jsonTagName makes validation errors report fields by their json names.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}
