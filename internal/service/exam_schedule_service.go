package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"admit-desk/backend/config"
	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/model"
	"admit-desk/backend/internal/repository"
	"admit-desk/backend/internal/schedule"
)

// ── 考试日程模块业务错误 ──

var (
	ErrNoActiveApplications = errors.New("该考生没有有效的岗位申请")
	ErrSharedPaperMismatch  = errors.New("考生各申请的公共科目安排不一致")
)

// ExamScheduleService 考试日程业务接口
// 每次请求按最新的 active 申请实时合并，结果不缓存、不落库
type ExamScheduleService interface {
	// GetByContactKey 按联系方式查询考生合并考试日程（管理员）
	GetByContactKey(ctx context.Context, contactKey string) (*dto.ConsolidatedScheduleResponse, error)
	// GetByCandidateID 按考生ID查询（考生本人）
	GetByCandidateID(ctx context.Context, candidateID string) (*dto.ConsolidatedScheduleResponse, error)
}

type examScheduleService struct {
	builder *scheduleBuilder
}

// NewExamScheduleService 创建 ExamScheduleService 实例
func NewExamScheduleService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExamScheduleService {
	return &examScheduleService{builder: newScheduleBuilder(cfg, repo, logger)}
}

func (s *examScheduleService) GetByContactKey(ctx context.Context, contactKey string) (*dto.ConsolidatedScheduleResponse, error) {
	candidate, err := s.builder.candidateByContactKey(ctx, contactKey)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, candidate)
}

func (s *examScheduleService) GetByCandidateID(ctx context.Context, candidateID string) (*dto.ConsolidatedScheduleResponse, error) {
	candidate, err := s.builder.candidateByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, candidate)
}

func (s *examScheduleService) respond(ctx context.Context, candidate *model.Candidate) (*dto.ConsolidatedScheduleResponse, error) {
	result, err := s.builder.build(ctx, candidate)
	if err != nil {
		return nil, err
	}
	return toScheduleResponse(candidate, result), nil
}

// ═══════════════════════════════════════════════════════════
// scheduleBuilder 读取申请并调用核心引擎（日程查询与导出共用）
// ═══════════════════════════════════════════════════════════

type scheduleBuilder struct {
	repo   *repository.Repository
	strict bool
	logger *zap.Logger
}

func newScheduleBuilder(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *scheduleBuilder {
	return &scheduleBuilder{
		repo:   repo,
		strict: cfg.Schedule.StrictSharedPaper,
		logger: logger,
	}
}

func (b *scheduleBuilder) candidateByContactKey(ctx context.Context, contactKey string) (*model.Candidate, error) {
	key := model.NormalizeContactKey(contactKey)
	if key == "" {
		return nil, ErrContactKeyEmpty
	}
	candidate, err := b.repo.Candidate.GetByContactKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		b.logger.Error("查询考生失败", zap.String("contact_key", key), zap.Error(err))
		return nil, err
	}
	return candidate, nil
}

func (b *scheduleBuilder) candidateByID(ctx context.Context, candidateID string) (*model.Candidate, error) {
	candidate, err := b.repo.Candidate.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		b.logger.Error("查询考生失败", zap.String("candidate_id", candidateID), zap.Error(err))
		return nil, err
	}
	return candidate, nil
}

// build 加载考生 active 申请（按岗位ID升序）并合并为考试日程
func (b *scheduleBuilder) build(ctx context.Context, candidate *model.Candidate) (*schedule.ConsolidatedSchedule, error) {
	apps, err := b.repo.Application.ListActiveByCandidate(ctx, candidate.CandidateID)
	if err != nil {
		b.logger.Error("查询考生申请失败", zap.String("candidate_id", candidate.CandidateID), zap.Error(err))
		return nil, err
	}
	if len(apps) == 0 {
		return nil, ErrNoActiveApplications
	}

	records := make([]schedule.Record, 0, len(apps))
	for i := range apps {
		records = append(records, toScheduleRecord(&apps[i]))
	}

	// 公共科目一致性：严格模式拒绝，否则告警后以第一条为准
	if err := schedule.CheckSharedConsistency(records); err != nil {
		var mismatch *schedule.SharedMismatchError
		if errors.As(err, &mismatch) {
			fields := []zap.Field{
				zap.String("candidate_id", candidate.CandidateID),
				zap.String("canonical_application_id", mismatch.CanonicalApplicationID),
				zap.Strings("mismatched_application_ids", mismatch.MismatchedIDs),
			}
			if b.strict {
				b.logger.Warn("公共科目安排不一致，拒绝合并", fields...)
				return nil, ErrSharedPaperMismatch
			}
			b.logger.Warn("公共科目安排不一致，以第一条申请为准", fields...)
		}
	}

	result, err := schedule.Build(records)
	if err != nil {
		// records 非空时不会发生
		b.logger.Error("合并考试日程失败", zap.String("candidate_id", candidate.CandidateID), zap.Error(err))
		return nil, err
	}

	if result.HasConflicts {
		b.logger.Info("考试日程存在时间冲突",
			zap.String("candidate_id", candidate.CandidateID),
			zap.Int("total_papers", result.TotalPapers),
			zap.Int("conflicts", len(result.Conflicts)),
		)
	}
	return result, nil
}

// ── 响应转换 ──

func toScheduleResponse(candidate *model.Candidate, s *schedule.ConsolidatedSchedule) *dto.ConsolidatedScheduleResponse {
	papers := make([]dto.ExamPaperResponse, 0, len(s.Papers))
	for i := range s.Papers {
		papers = append(papers, toExamPaperResponse(&s.Papers[i]))
	}
	conflicts := make([]dto.ExamConflictResponse, 0, len(s.Conflicts))
	for _, c := range s.Conflicts {
		conflicts = append(conflicts, dto.ExamConflictResponse{
			Paper1:       c.PaperA,
			Paper2:       c.PaperB,
			ConflictType: c.ConflictType,
			ExamDate:     c.ExamDate,
			Paper1Info:   toConflictSide(c.SideA),
			Paper2Info:   toConflictSide(c.SideB),
			Severity:     c.Severity,
			Message:      c.Message,
		})
	}

	return &dto.ConsolidatedScheduleResponse{
		Candidate:         toCandidateBrief(candidate),
		TotalPapers:       s.TotalPapers,
		SharedPapers:      s.SharedPapers,
		JobSpecificPapers: s.JobSpecificPapers,
		Papers:            papers,
		Conflicts:         conflicts,
		HasConflicts:      s.HasConflicts,
		GeneratedAt:       time.Now().UTC().Format(timeLayout),
	}
}

func toExamPaperResponse(p *schedule.PaperEntry) dto.ExamPaperResponse {
	resp := dto.ExamPaperResponse{
		Subject:       p.Subject,
		ExamDate:      p.ExamDate,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		ReportingTime: p.ReportingTime,
		ExamTime:      p.ExamTime,
		VenueName:     p.VenueName,
		VenueAddress:  p.VenueAddress,
		IsShared:      p.IsShared(),
	}
	if p.IsShared() {
		resp.ApplicationID = p.Shared.ApplicationID
		resp.RollNumbers = p.Shared.RollNumbers
		resp.Description = p.Shared.Description
		return resp
	}
	resp.ApplicationID = p.Job.ApplicationID
	resp.JobTitle = p.Job.JobTitle
	resp.JobID = p.Job.JobID
	resp.RollNumber = p.Job.RollNumber
	return resp
}

func toConflictSide(side schedule.ConflictSide) dto.ConflictSideResponse {
	return dto.ConflictSideResponse{
		Subject:    side.Subject,
		Time:       side.Time,
		RollNumber: side.RollNumber,
		JobName:    side.JobName,
	}
}
