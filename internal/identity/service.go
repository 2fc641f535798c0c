// File: internal/identity/service.go
package identity

import (
	"context"
	"errors"
	"time"

	"caffind_backend/internal/common"
	"caffind_backend/internal/config"
	"caffind_backend/internal/platform/metrics"

	"go.uber.org/zap"
)

// Service implements the identity operations behind /auth.
type Service struct {
	provider Provider
	verifier *Verifier
	timeout  time.Duration
	metrics  metrics.Metrics
	logger   *zap.Logger
}

// NewService creates a new identity service.
func NewService(provider Provider, verifier *Verifier, cfg *config.Config, m metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		verifier: verifier,
		timeout:  cfg.IdentityTimeout,
		metrics:  m,
		logger:   logger.Named("IdentityService"),
	}
}

// VerifyToken always answers: an unusable token is a valid=false result, never an error.
func (s *Service) VerifyToken(ctx context.Context, authHeader string) TokenVerifyResult {
	res := s.verifier.VerifyHeader(ctx, authHeader)
	if !res.Valid() {
		reason := res.Reason()
		return TokenVerifyResult{Valid: false, Error: &reason}
	}
	return TokenVerifyResult{Valid: true, User: res.Claims.ToIdentity()}
}

// GetUser fetches the provider record for uid.
func (s *Service) GetUser(ctx context.Context, uid string) (*Identity, error) {
	ctx, cancel := common.WithOptionalTimeout(ctx, s.timeout)
	defer cancel()

	rec, err := s.provider.GetUser(ctx, uid)
	if err != nil {
		return nil, s.providerError("get user", uid, err)
	}
	s.metrics.IncUpstreamCall(metrics.ServiceIdentity, metrics.OutcomeSuccess)

	user := IdentityFromRecord(rec)
	if user == nil {
		return nil, common.ErrNotFound.WithDetail("User not found")
	}
	return user, nil
}

// DeleteUser removes the provider record for uid.
func (s *Service) DeleteUser(ctx context.Context, uid string) (*DeleteResponse, error) {
	ctx, cancel := common.WithOptionalTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.provider.DeleteUser(ctx, uid); err != nil {
		return nil, s.providerError("delete user", uid, err)
	}
	s.metrics.IncUpstreamCall(metrics.ServiceIdentity, metrics.OutcomeSuccess)
	s.logger.Info("User account deleted", zap.String("uid", uid))
	return &DeleteResponse{Success: true, Message: "User account deleted successfully"}, nil
}

func (s *Service) providerError(op, uid string, err error) error {
	if errors.Is(err, ErrUserNotFound) {
		s.metrics.IncUpstreamCall(metrics.ServiceIdentity, metrics.OutcomeSuccess)
		s.logger.Info("User record not found", zap.String("op", op), zap.String("uid", uid))
		return common.ErrNotFound.WithDetail("User not found")
	}
	s.metrics.IncUpstreamCall(metrics.ServiceIdentity, metrics.OutcomeError)
	s.logger.Error("Identity provider call failed", zap.String("op", op), zap.String("uid", uid), zap.Error(err))
	return common.ErrInternalServer.WithDetail(err.Error())
}
