package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"admit-desk/backend/config"
	"admit-desk/backend/internal/repository"
	"admit-desk/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Candidate    CandidateService
	Job          JobService
	Application  ApplicationService
	ExamSchedule ExamScheduleService
	Export       ExportService
}

// NewService 创建 Service 聚合
// rdb 可为 nil（Redis 不可用时注销仅校验不拉黑）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var blacklist TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}
	return &Service{
		Auth:         NewAuthService(blacklist, logger),
		Candidate:    NewCandidateService(repo, logger),
		Job:          NewJobService(repo, logger),
		Application:  NewApplicationService(repo, logger),
		ExamSchedule: NewExamScheduleService(cfg, repo, logger),
		Export:       NewExportService(cfg, repo, logger),
	}
}

// ── 通用辅助 ──

const timeLayout = "2006-01-02T15:04:05Z"

// auditID 审计字段仅记录合法 UUID 形式的操作人ID
func auditID(callerID string) *string {
	if _, err := uuid.Parse(callerID); err != nil {
		return nil
	}
	return &callerID
}
