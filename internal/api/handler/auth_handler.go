package handler

import (
	"github.com/gin-gonic/gin"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/service"
	"admit-desk/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Logout 注销当前 Token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt := GetTokenInfo(c)

	revoked, err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.LogoutResponse{Revoked: revoked})
}
