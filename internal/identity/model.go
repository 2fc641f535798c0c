// File: internal/identity/model.go
package identity

import (
	"errors"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// Classified provider conditions. Provider implementations wrap their native errors
// with these so the verifier and auth gate never look at SDK specifics.
var (
	ErrTokenMissing = errors.New("identity: token missing")
	ErrTokenInvalid = errors.New("identity: token invalid")
	ErrTokenExpired = errors.New("identity: token expired")
	ErrUserNotFound = errors.New("identity: user not found")
)

// Status is the classified outcome of a token verification.
type Status int

const (
	StatusValid Status = iota
	StatusMissing
	StatusInvalid
	StatusExpired
	StatusProviderError
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusMissing:
		return "missing"
	case StatusInvalid:
		return "invalid"
	case StatusExpired:
		return "expired"
	default:
		return "provider_error"
	}
}

// Human readable reasons surfaced in 401 responses and TokenVerifyResult.error.
const (
	ReasonMissing = "Authorization header required"
	ReasonInvalid = "Invalid ID token"
	ReasonExpired = "Token has expired"
)

// Claims are the decoded fields of a verified ID token.
type Claims struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	ProviderID  string
}

// Identity is the user shape returned to clients. Absent fields render as null.
type Identity struct {
	UID         string  `json:"uid"`
	Email       *string `json:"email"`
	DisplayName *string `json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
	ProviderID  *string `json:"provider_id"`
}

// TokenVerifyResult is the body of POST /auth/verify.
type TokenVerifyResult struct {
	Valid bool      `json:"valid"`
	User  *Identity `json:"user"`
	Error *string   `json:"error"`
}

// DeleteResponse is the body of DELETE /auth/user.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ClaimsFromToken reads the identity fields out of a verified Firebase token.
func ClaimsFromToken(token *firebaseauth.Token) *Claims {
	if token == nil {
		return nil
	}
	return &Claims{
		UID:         token.UID,
		Email:       stringClaim(token.Claims, "email"),
		DisplayName: stringClaim(token.Claims, "name"),
		PhotoURL:    stringClaim(token.Claims, "picture"),
		ProviderID:  token.Firebase.SignInProvider,
	}
}

// ToIdentity converts claims to the client shape.
func (c *Claims) ToIdentity() *Identity {
	return &Identity{
		UID:         c.UID,
		Email:       optional(c.Email),
		DisplayName: optional(c.DisplayName),
		PhotoURL:    optional(c.PhotoURL),
		ProviderID:  optional(c.ProviderID),
	}
}

// IdentityFromRecord converts a provider user record to the client shape.
func IdentityFromRecord(rec *firebaseauth.UserRecord) *Identity {
	if rec == nil || rec.UserInfo == nil {
		return nil
	}
	return &Identity{
		UID:         rec.UID,
		Email:       optional(rec.Email),
		DisplayName: optional(rec.DisplayName),
		PhotoURL:    optional(rec.PhotoURL),
		ProviderID:  optional(rec.ProviderID),
	}
}

func stringClaim(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
