// File: internal/chat/service.go
package chat

import (
	"context"
	"time"

	"caffind_backend/internal/common"
	"caffind_backend/internal/config"
	"caffind_backend/internal/platform/metrics"

	"go.uber.org/zap"
)

// Service relays a chat message to the inference endpoint. It never fails: any upstream
// problem is answered with FallbackResponse.
type Service struct {
	completer Completer
	maxTokens int
	timeout   time.Duration
	metrics   metrics.Metrics
	logger    *zap.Logger
}

// NewService creates a new chat service.
func NewService(completer Completer, cfg *config.Config, m metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		completer: completer,
		maxTokens: cfg.InferenceMaxTokens,
		timeout:   cfg.InferenceTimeout,
		metrics:   m,
		logger:    logger.Named("ChatService"),
	}
}

// Reply answers req. History is accepted but only the latest message is forwarded.
func (s *Service) Reply(ctx context.Context, req ChatRequest) ChatResponse {
	if len(req.History) > 0 {
		s.logger.Debug("Chat history not forwarded", zap.Int("turns", len(req.History)))
	}

	ctx, cancel := common.WithOptionalTimeout(ctx, s.timeout)
	defer cancel()

	prompt := []Message{
		{Role: RoleSystem, Content: SystemPrompt},
		{Role: RoleUser, Content: req.Message},
	}
	text, err := s.completer.Complete(ctx, prompt, s.maxTokens)
	if err != nil {
		s.metrics.IncUpstreamCall(metrics.ServiceInference, metrics.OutcomeFallback)
		s.logger.Warn("Inference call failed, answering with fallback", zap.Error(err))
		return ChatResponse{Response: FallbackResponse}
	}

	s.metrics.IncUpstreamCall(metrics.ServiceInference, metrics.OutcomeSuccess)
	return ChatResponse{Response: text}
}
