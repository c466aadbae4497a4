package dto

// ── 认证模块 DTO ──

// LogoutResponse 注销响应
type LogoutResponse struct {
	Revoked bool `json:"revoked"` // Token 是否已加入黑名单（Redis 不可用时为 false）
}
