package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"admit-desk/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id（Token subject）。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

// MustGetCandidateID 从 Gin 上下文中提取考生 Token 携带的 candidate_id。
func MustGetCandidateID(c *gin.Context) (string, bool) {
	return mustGetString(c, "candidate_id")
}

// GetTokenInfo 提取当前 Token 的 jti 与过期时间（注销时使用）
func GetTokenInfo(c *gin.Context) (string, time.Time) {
	jti := c.GetString("token_jti")
	exp, _ := c.Get("token_exp")
	expiresAt, _ := exp.(time.Time)
	return jti, expiresAt
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}
