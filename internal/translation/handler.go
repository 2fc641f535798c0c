// File: internal/translation/handler.go
package translation

import (
	"caffind_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the translation service over HTTP.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("TranslationHandler")}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/translate", h.translate)
}

func (h *Handler) translate(c *gin.Context) {
	var req TranslateRequest
	if !common.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Translate(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.RespondOK(c, resp)
}
