// File: internal/chat/handler.go
package chat

import (
	"caffind_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("ChatHandler")}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/chat", h.chat)
}

func (h *Handler) chat(c *gin.Context) {
	var req ChatRequest
	if !common.BindJSON(c, &req) {
		return
	}
	common.RespondOK(c, h.service.Reply(c.Request.Context(), req))
}
