// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix stripped from the header value, case-sensitive.
	AuthorizationTypeBearer = "Bearer "
	// IdentityClaimsKey is the context key for the verified token claims
	IdentityClaimsKey = "identityClaims"
	// RequestIDHeader is the header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the key for storing request ID in Gin context
	RequestIDContextKey = "requestID"
)
