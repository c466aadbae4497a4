package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockBlacklist struct {
	entries map[string]time.Duration
	err     error
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.entries[jti] = ttl
	return nil
}

func TestAuthService_Logout_Success(t *testing.T) {
	bl := &mockBlacklist{entries: make(map[string]time.Duration)}
	svc := NewAuthService(bl, nopLogger())

	revoked, err := svc.Logout(context.Background(), "jti-1", time.Now().Add(10*time.Minute))
	if err != nil {
		t.Fatalf("Logout 应成功: %v", err)
	}
	if !revoked {
		t.Error("期望 revoked=true")
	}
	ttl, ok := bl.entries["jti-1"]
	if !ok || ttl <= 0 || ttl > 10*time.Minute {
		t.Errorf("黑名单 TTL 错误: %v", ttl)
	}
}

func TestAuthService_Logout_ExpiredToken(t *testing.T) {
	bl := &mockBlacklist{entries: make(map[string]time.Duration)}
	svc := NewAuthService(bl, nopLogger())

	revoked, err := svc.Logout(context.Background(), "jti-1", time.Now().Add(-time.Minute))
	if err != nil || revoked {
		t.Errorf("已过期 Token 无需拉黑，实际 revoked=%v err=%v", revoked, err)
	}
	if len(bl.entries) != 0 {
		t.Error("不应写入黑名单")
	}
}

func TestAuthService_Logout_NoBlacklist(t *testing.T) {
	svc := NewAuthService(nil, nopLogger())

	revoked, err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Minute))
	if err != nil || revoked {
		t.Errorf("Redis 不可用时应降级，实际 revoked=%v err=%v", revoked, err)
	}
}

func TestAuthService_Logout_StoreError(t *testing.T) {
	bl := &mockBlacklist{entries: make(map[string]time.Duration), err: errors.New("redis down")}
	svc := NewAuthService(bl, nopLogger())

	if _, err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Minute)); err == nil {
		t.Error("期望返回存储错误")
	}
}
