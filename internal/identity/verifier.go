// File: internal/identity/verifier.go
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"caffind_backend/internal/common"
	"caffind_backend/internal/config"
	"caffind_backend/internal/platform/metrics"

	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// Provider is the slice of the identity provider this service consumes.
// Implementations must wrap classified failures with the Err* sentinels.
type Provider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
	GetUser(ctx context.Context, uid string) (*firebaseauth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
}

// Result is the classified outcome of verifying one token.
type Result struct {
	Status Status
	Claims *Claims
	Err    error
}

func (r Result) Valid() bool { return r.Status == StatusValid }

// Reason is the human readable explanation for a non-valid result.
func (r Result) Reason() string {
	switch r.Status {
	case StatusValid:
		return ""
	case StatusMissing:
		return ReasonMissing
	case StatusInvalid:
		return ReasonInvalid
	case StatusExpired:
		return ReasonExpired
	}
	if r.Err != nil && r.Err.Error() != "" {
		return r.Err.Error()
	}
	return ReasonInvalid
}

// Verifier verifies bearer tokens against the identity provider.
type Verifier struct {
	provider     Provider
	strictBearer bool
	timeout      time.Duration
	metrics      metrics.Metrics
	logger       *zap.Logger
}

// NewVerifier wires a Verifier from configuration.
func NewVerifier(provider Provider, cfg *config.Config, m metrics.Metrics, logger *zap.Logger) *Verifier {
	return &Verifier{
		provider:     provider,
		strictBearer: cfg.AuthStrictBearer,
		timeout:      cfg.IdentityTimeout,
		metrics:      m,
		logger:       logger.Named("IdentityVerifier"),
	}
}

// TokenFromHeader extracts the token from an Authorization header value.
// The "Bearer " prefix is optional and case-sensitive; without it the raw value is the
// token, unless strict is set.
func TokenFromHeader(header string, strict bool) (string, error) {
	if header == "" {
		return "", ErrTokenMissing
	}
	token, found := strings.CutPrefix(header, common.AuthorizationTypeBearer)
	if !found && strict {
		return "", ErrTokenInvalid
	}
	if token == "" {
		return "", ErrTokenMissing
	}
	return token, nil
}

// Classify maps an error returned by a Provider onto a Status.
func Classify(err error) Status {
	switch {
	case err == nil:
		return StatusValid
	case errors.Is(err, ErrTokenExpired):
		return StatusExpired
	case errors.Is(err, ErrTokenInvalid):
		return StatusInvalid
	case errors.Is(err, ErrTokenMissing):
		return StatusMissing
	default:
		return StatusProviderError
	}
}

// VerifyHeader parses an Authorization header value and verifies the token it carries.
// A missing or malformed header is classified without calling the provider.
func (v *Verifier) VerifyHeader(ctx context.Context, header string) Result {
	token, err := TokenFromHeader(header, v.strictBearer)
	if err != nil {
		return Result{Status: Classify(err), Err: err}
	}
	return v.Verify(ctx, token)
}

// Verify checks token with the provider.
func (v *Verifier) Verify(ctx context.Context, token string) Result {
	if token == "" {
		return Result{Status: StatusMissing, Err: ErrTokenMissing}
	}

	ctx, cancel := common.WithOptionalTimeout(ctx, v.timeout)
	defer cancel()

	decoded, err := v.provider.VerifyIDToken(ctx, token)
	status := Classify(err)
	if status == StatusProviderError {
		v.metrics.IncUpstreamCall(metrics.ServiceIdentity, metrics.OutcomeError)
	} else {
		v.metrics.IncUpstreamCall(metrics.ServiceIdentity, metrics.OutcomeSuccess)
	}
	if err != nil {
		v.logger.Warn("ID token verification failed", zap.Stringer("status", status), zap.Error(err))
		return Result{Status: status, Err: err}
	}
	if decoded == nil {
		return Result{Status: StatusInvalid, Err: ErrTokenInvalid}
	}

	claims := ClaimsFromToken(decoded)
	v.logger.Debug("ID token verified", zap.String("uid", claims.UID))
	return Result{Status: StatusValid, Claims: claims}
}
