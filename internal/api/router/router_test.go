package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"admit-desk/backend/config"
	"admit-desk/backend/internal/api/handler"
	"admit-desk/backend/internal/service"
	"admit-desk/backend/pkg/jwt"
)

func newTestEngine(t *testing.T) (*jwt.Manager, http.Handler) {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Port: 8080, BodyLimit: 1 << 20, CORS: config.CORSConfig{AllowOrigins: []string{"http://localhost:5173"}}},
		Auth:      config.AuthConfig{JWTSecret: "router-test-secret-0123", Issuer: "admit-desk", AccessTokenTTL: time.Minute},
		RateLimit: config.RateLimitConfig{Requests: 60, Window: time.Minute},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	// 仅验证鉴权链路，请求在到达 Service 前即被拦截
	h := handler.NewHandler(&service.Service{})
	return jwtMgr, Setup(cfg, h, jwtMgr, nil, nil, zap.NewNop())
}

func do(engine http.Handler, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	_, engine := newTestEngine(t)
	w := do(engine, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRoutes_RequireToken(t *testing.T) {
	_, engine := newTestEngine(t)
	paths := []string{
		"/api/v1/exam-schedule?contact_key=a@b.c",
		"/api/v1/exam-schedule/me",
		"/api/v1/export/exam-schedule?contact_key=a@b.c",
		"/api/v1/candidates/a@b.c",
		"/api/v1/jobs",
		"/api/v1/applications?contact_key=a@b.c",
	}
	for _, p := range paths {
		if w := do(engine, "GET", p, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", p, w.Code)
		}
	}
}

func TestRoutes_RoleSeparation(t *testing.T) {
	jwtMgr, engine := newTestEngine(t)

	candidateToken, err := jwtMgr.GenerateAccessToken("cand-subject", jwt.RoleCandidate, "cand-1")
	if err != nil {
		t.Fatalf("生成考生 Token 失败: %v", err)
	}
	adminToken, err := jwtMgr.GenerateAccessToken("admin-subject", jwt.RoleAdmin, "")
	if err != nil {
		t.Fatalf("生成管理员 Token 失败: %v", err)
	}

	adminOnly := []string{
		"/api/v1/exam-schedule?contact_key=a@b.c",
		"/api/v1/export/exam-schedule?contact_key=a@b.c",
		"/api/v1/candidates/a@b.c",
		"/api/v1/applications?contact_key=a@b.c",
	}
	for _, p := range adminOnly {
		if w := do(engine, "GET", p, candidateToken); w.Code != http.StatusForbidden {
			t.Errorf("%s: candidate expected 403, got %d", p, w.Code)
		}
	}

	if w := do(engine, "GET", "/api/v1/exam-schedule/me", adminToken); w.Code != http.StatusForbidden {
		t.Errorf("admin on /exam-schedule/me expected 403, got %d", w.Code)
	}
}
