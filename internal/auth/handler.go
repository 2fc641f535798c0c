// File: internal/auth/handler.go
package auth

import (
	"caffind_backend/internal/common"
	"caffind_backend/internal/identity"
	"caffind_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	service  *identity.Service
	verifier *identity.Verifier
	logger   *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(service *identity.Service, verifier *identity.Verifier, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		verifier: verifier,
		logger:   logger.Named("AuthHandler"),
	}
}

// RegisterRoutes sets up the routes for identity operations under /auth.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	requireAuth := middleware.RequireAuth(h.verifier, h.logger)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/verify", h.verify)
		authGroup.GET("/me", requireAuth, h.me)
		authGroup.DELETE("/user", requireAuth, h.deleteUser)
	}
}

// verify answers 200 for every token; an unusable one yields valid=false with a reason.
func (h *Handler) verify(c *gin.Context) {
	result := h.service.VerifyToken(c.Request.Context(), c.GetHeader(common.AuthorizationHeader))
	common.RespondOK(c, result)
}

func (h *Handler) me(c *gin.Context) {
	claims := middleware.GetClaimsFromContext(c)
	if claims == nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetail(identity.ReasonMissing))
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), claims.UID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.RespondOK(c, user)
}

func (h *Handler) deleteUser(c *gin.Context) {
	claims := middleware.GetClaimsFromContext(c)
	if claims == nil {
		common.RespondWithError(c, common.ErrUnauthorized.WithDetail(identity.ReasonMissing))
		return
	}

	resp, err := h.service.DeleteUser(c.Request.Context(), claims.UID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.RespondOK(c, resp)
}
