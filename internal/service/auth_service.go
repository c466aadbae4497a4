package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TokenBlacklist Token 黑名单存储（由 pkg/redis.Client 实现）
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService 认证业务接口
// Token 由统一认证平台签发，本服务只负责校验与注销
type AuthService interface {
	// Logout 将 Token 加入黑名单直至其过期，返回是否实际写入黑名单
	Logout(ctx context.Context, jti string, expiresAt time.Time) (bool, error)
}

type authService struct {
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(blacklist TokenBlacklist, logger *zap.Logger) AuthService {
	return &authService{blacklist: blacklist, logger: logger}
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) (bool, error) {
	if s.blacklist == nil || jti == "" {
		s.logger.Warn("Token 黑名单不可用，跳过注销", zap.String("jti", jti))
		return false, nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return false, nil
	}

	if err := s.blacklist.BlacklistToken(ctx, jti, ttl); err != nil {
		s.logger.Error("写入 Token 黑名单失败", zap.String("jti", jti), zap.Error(err))
		return false, err
	}

	s.logger.Info("Token 已注销", zap.String("jti", jti), zap.Duration("ttl", ttl))
	return true, nil
}
