package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admit-desk/backend/config"
	"admit-desk/backend/internal/api/handler"
	"admit-desk/backend/internal/api/middleware"
	"admit-desk/backend/pkg/jwt"
	"admit-desk/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时黑名单与限流降级放行
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Redis 不可用时避免把 typed nil 装进接口
	var (
		blacklist middleware.BlacklistChecker
		limiter   middleware.RateLimiter
	)
	if rdb != nil {
		blacklist = rdb
		limiter = rdb
	}

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	r.Use(middleware.RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window))

	// ── 健康检查 ──
	r.GET("/health", healthCheck(db))

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	authorized := v1.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, blacklist))
	{
		authorized.POST("/auth/logout", h.Auth.Logout)

		admin := middleware.RoleAuth(jwt.RoleAdmin)

		// 考试日程模块
		examSchedule := authorized.Group("/exam-schedule")
		{
			examSchedule.GET("/me", middleware.RoleAuth(jwt.RoleCandidate), h.ExamSchedule.GetMyExamSchedule)
			examSchedule.GET("", admin, h.ExamSchedule.GetExamSchedule)
		}

		// 导出模块
		export := authorized.Group("/export")
		{
			export.GET("/exam-schedule", admin, h.Export.ExportExamSchedule)
		}

		// 考生模块
		candidates := authorized.Group("/candidates", admin)
		{
			candidates.POST("", h.Candidate.CreateCandidate)
			candidates.GET("/:contact_key", h.Candidate.GetCandidate)
			candidates.PUT("/:contact_key", h.Candidate.UpdateCandidate)
		}

		// 岗位模块
		jobs := authorized.Group("/jobs")
		{
			jobs.GET("", h.Job.ListJobs)
			jobs.GET("/:id", h.Job.GetJob)
			jobs.POST("", admin, h.Job.CreateJob)
			jobs.PUT("/:id", admin, h.Job.UpdateJob)
			jobs.DELETE("/:id", admin, h.Job.DeleteJob)
		}

		// 岗位申请模块
		applications := authorized.Group("/applications", admin)
		{
			applications.POST("", h.Application.CreateApplication)
			applications.GET("", h.Application.ListApplications)
			applications.GET("/:id", h.Application.GetApplication)
			applications.PUT("/:id", h.Application.UpdateApplication)
			applications.PUT("/:id/withdraw", h.Application.WithdrawApplication)
			applications.DELETE("/:id", h.Application.DeleteApplication)
		}
	}

	return r
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			sqlDB, err := db.DB()
			if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
