// File: internal/translation/service.go
package translation

import (
	"context"
	"time"

	"caffind_backend/internal/common"
	"caffind_backend/internal/config"
	"caffind_backend/internal/platform/metrics"

	"go.uber.org/zap"
)

// Service applies request defaults and shapes engine results.
type Service struct {
	engine  Engine
	timeout time.Duration
	metrics metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new translation service.
func NewService(engine Engine, cfg *config.Config, m metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		engine:  engine,
		timeout: cfg.TranslateTimeout,
		metrics: m,
		logger:  logger.Named("TranslationService"),
	}
}

// Translate runs one request against the engine. Engine failures become a 500 carrying
// the engine's message.
func (s *Service) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	target := DefaultTarget
	if req.Target != nil {
		target = *req.Target
	}
	source := AutoDetect
	if req.Source != nil {
		source = *req.Source
	}

	ctx, cancel := common.WithOptionalTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.engine.Translate(ctx, req.Text, target, source)
	s.metrics.IncUpstreamCall(metrics.ServiceTranslation, metrics.Outcome(err))
	if err != nil {
		s.logger.Error("Translation failed",
			zap.String("target", target),
			zap.String("source", source),
			zap.Error(err),
		)
		return nil, common.ErrInternalServer.WithDetail(err.Error())
	}

	return &TranslateResponse{
		TranslatedText: res.Text,
		DetectedSource: res.Source,
		Target:         res.Target,
	}, nil
}
