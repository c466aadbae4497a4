package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/model"
	"admit-desk/backend/internal/repository"
	"admit-desk/backend/internal/schedule"
	pkgerrors "admit-desk/backend/pkg/errors"
)

// ── 岗位申请模块业务错误 ──

var (
	ErrApplicationNotFound  = errors.New("申请不存在")
	ErrApplicationExists    = errors.New("该考生已申请此岗位")
	ErrApplicationConflict  = errors.New("申请已被其他操作修改，请刷新后重试")
	ErrApplicationNotActive = errors.New("申请当前状态不允许此操作")
	ErrJobInactive          = errors.New("岗位已停止招聘")
	ErrInvalidExamDate      = errors.New("考试日期格式错误，应为 YYYY-MM-DD")
	ErrInvalidExamTime      = errors.New("考试时间格式错误或结束时间早于开始时间")
)

const dateLayout = "2006-01-02"

// ApplicationService 岗位申请业务接口
type ApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest, callerID string) (*dto.ApplicationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ApplicationResponse, error)
	ListByCandidate(ctx context.Context, contactKey string) ([]dto.ApplicationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateApplicationRequest, callerID string) (*dto.ApplicationResponse, error)
	Withdraw(ctx context.Context, id string, callerID string) (*dto.ApplicationResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type applicationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewApplicationService 创建 ApplicationService 实例
func NewApplicationService(repo *repository.Repository, logger *zap.Logger) ApplicationService {
	return &applicationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest, callerID string) (*dto.ApplicationResponse, error) {
	// 1. 校验考试安排
	shared, err := parsePaperInput(req.SharedPaper)
	if err != nil {
		return nil, err
	}
	jobPaper, err := parsePaperInput(req.JobPaper)
	if err != nil {
		return nil, err
	}

	// 2. 考生与岗位必须存在
	candidate, err := s.repo.Candidate.GetByContactKey(ctx, model.NormalizeContactKey(req.ContactKey))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		s.logger.Error("查询考生失败", zap.Error(err))
		return nil, err
	}
	job, err := s.repo.Job.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		s.logger.Error("查询岗位失败", zap.Int64("job_id", req.JobID), zap.Error(err))
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrJobInactive
	}

	// 3. 同一考生同一岗位仅允许一条申请
	_, err = s.repo.Application.GetByCandidateAndJob(ctx, candidate.CandidateID, job.JobID)
	if err == nil {
		return nil, ErrApplicationExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询申请失败", zap.Error(err))
		return nil, err
	}

	app := &model.Application{
		CandidateID:  candidate.CandidateID,
		JobID:        job.JobID,
		RollNumber:   strings.TrimSpace(req.RollNumber),
		Status:       model.ApplicationStatusActive,
		VenueName:    req.VenueName,
		VenueAddress: req.VenueAddress,
	}
	applySharedPaper(app, shared)
	applyJobPaper(app, jobPaper)
	app.Version = 1
	app.CreatedBy = auditID(callerID)
	app.UpdatedBy = auditID(callerID)

	if err := s.repo.Application.Create(ctx, app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrApplicationExists
		}
		s.logger.Error("创建申请失败", zap.String("candidate_id", candidate.CandidateID), zap.Error(err))
		return nil, err
	}
	app.Candidate = candidate
	app.Job = job

	s.logger.Info("创建申请",
		zap.String("application_id", app.ApplicationID),
		zap.String("candidate_id", candidate.CandidateID),
		zap.Int64("job_id", job.JobID),
	)
	return toApplicationResponse(app), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *applicationService) GetByID(ctx context.Context, id string) (*dto.ApplicationResponse, error) {
	app, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// ────────────────────── ListByCandidate ──────────────────────

func (s *applicationService) ListByCandidate(ctx context.Context, contactKey string) ([]dto.ApplicationResponse, error) {
	candidate, err := s.repo.Candidate.GetByContactKey(ctx, model.NormalizeContactKey(contactKey))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		s.logger.Error("查询考生失败", zap.Error(err))
		return nil, err
	}

	apps, err := s.repo.Application.ListByCandidate(ctx, candidate.CandidateID)
	if err != nil {
		s.logger.Error("列出申请失败", zap.String("candidate_id", candidate.CandidateID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		result = append(result, *toApplicationResponse(&apps[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *applicationService) Update(ctx context.Context, id string, req *dto.UpdateApplicationRequest, callerID string) (*dto.ApplicationResponse, error) {
	app, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Version != req.Version {
		return nil, ErrApplicationConflict
	}

	shared, err := parsePaperInput(req.SharedPaper)
	if err != nil {
		return nil, err
	}
	jobPaper, err := parsePaperInput(req.JobPaper)
	if err != nil {
		return nil, err
	}

	if req.RollNumber != nil {
		app.RollNumber = strings.TrimSpace(*req.RollNumber)
	}
	switch {
	case req.ClearShared:
		applySharedPaper(app, nil)
	case shared != nil:
		applySharedPaper(app, shared)
	}
	switch {
	case req.ClearJob:
		applyJobPaper(app, nil)
	case jobPaper != nil:
		applyJobPaper(app, jobPaper)
	}
	if req.VenueName != nil {
		app.VenueName = *req.VenueName
	}
	if req.VenueAddress != nil {
		app.VenueAddress = *req.VenueAddress
	}
	app.UpdatedBy = auditID(callerID)

	if err := s.repo.Application.Update(ctx, app); err != nil {
		if errors.Is(err, pkgerrors.ErrOptimisticLock) {
			return nil, ErrApplicationConflict
		}
		s.logger.Error("更新申请失败", zap.String("application_id", id), zap.Error(err))
		return nil, err
	}

	return toApplicationResponse(app), nil
}

// ────────────────────── Withdraw ──────────────────────

func (s *applicationService) Withdraw(ctx context.Context, id string, callerID string) (*dto.ApplicationResponse, error) {
	app, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != model.ApplicationStatusActive {
		return nil, ErrApplicationNotActive
	}

	if err := s.repo.Application.UpdateStatus(ctx, id, model.ApplicationStatusWithdrawn, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("撤回申请失败", zap.String("application_id", id), zap.Error(err))
		return nil, err
	}

	app.Status = model.ApplicationStatusWithdrawn
	app.Version++
	s.logger.Info("申请已撤回", zap.String("application_id", id))
	return toApplicationResponse(app), nil
}

// ────────────────────── Delete ──────────────────────

func (s *applicationService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Application.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除申请失败", zap.String("application_id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *applicationService) find(ctx context.Context, id string) (*model.Application, error) {
	app, err := s.repo.Application.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("查询申请失败", zap.String("application_id", id), zap.Error(err))
		return nil, err
	}
	return app, nil
}

// paperInput 校验后的考试安排，时间已统一为 "15:04:05"
type paperInput struct {
	subject   string
	date      time.Time
	start     string
	end       string
	reporting *string
}

func parsePaperInput(in *dto.PaperSlotInput) (*paperInput, error) {
	if in == nil {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, ErrInvalidExamDate
	}
	start, okStart := schedule.ParseClock(in.StartTime)
	end, okEnd := schedule.ParseClock(in.EndTime)
	if !okStart || !okEnd || end <= start {
		return nil, ErrInvalidExamTime
	}

	p := &paperInput{
		subject: strings.TrimSpace(in.Subject),
		date:    date,
		start:   schedule.NormalizeClock(in.StartTime),
		end:     schedule.NormalizeClock(in.EndTime),
	}
	if strings.TrimSpace(in.ReportingTime) != "" {
		if _, ok := schedule.ParseClock(in.ReportingTime); !ok {
			return nil, ErrInvalidExamTime
		}
		reporting := schedule.NormalizeClock(in.ReportingTime)
		p.reporting = &reporting
	}
	return p, nil
}

func applySharedPaper(app *model.Application, p *paperInput) {
	if p == nil {
		app.SharedSubject, app.SharedDate = nil, nil
		app.SharedStartTime, app.SharedEndTime, app.SharedReportingTime = nil, nil, nil
		return
	}
	app.SharedSubject = &p.subject
	app.SharedDate = &p.date
	app.SharedStartTime = &p.start
	app.SharedEndTime = &p.end
	app.SharedReportingTime = p.reporting
}

func applyJobPaper(app *model.Application, p *paperInput) {
	if p == nil {
		app.JobSubject, app.JobDate = nil, nil
		app.JobStartTime, app.JobEndTime, app.JobReportingTime = nil, nil, nil
		return
	}
	app.JobSubject = &p.subject
	app.JobDate = &p.date
	app.JobStartTime = &p.start
	app.JobEndTime = &p.end
	app.JobReportingTime = p.reporting
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// toPaperSlot 数据库列 → 核心引擎的考试安排；科目与日期均为空时视为无此科目
func toPaperSlot(subject *string, date *time.Time, start, end, reporting *string) *schedule.PaperSlot {
	if deref(subject) == "" && date == nil {
		return nil
	}
	return &schedule.PaperSlot{
		Subject:       deref(subject),
		Date:          formatDate(date),
		StartTime:     schedule.NormalizeClock(deref(start)),
		EndTime:       schedule.NormalizeClock(deref(end)),
		ReportingTime: schedule.NormalizeClock(deref(reporting)),
	}
}

func toPaperSlotResponse(p *schedule.PaperSlot) *dto.PaperSlotResponse {
	if p == nil {
		return nil
	}
	return &dto.PaperSlotResponse{
		Subject:       p.Subject,
		Date:          p.Date,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		ReportingTime: p.ReportingTime,
	}
}

// toScheduleRecord 申请 → 核心引擎输入记录
func toScheduleRecord(app *model.Application) schedule.Record {
	r := schedule.Record{
		JobID:         app.JobID,
		ApplicationID: app.ApplicationID,
		RollNumber:    app.RollNumber,
		SharedPaper: toPaperSlot(app.SharedSubject, app.SharedDate,
			app.SharedStartTime, app.SharedEndTime, app.SharedReportingTime),
		JobPaper: toPaperSlot(app.JobSubject, app.JobDate,
			app.JobStartTime, app.JobEndTime, app.JobReportingTime),
		VenueName:    app.VenueName,
		VenueAddress: app.VenueAddress,
	}
	if app.Job != nil {
		r.JobTitle = app.Job.Title
	}
	return r
}

func toApplicationResponse(app *model.Application) *dto.ApplicationResponse {
	rec := toScheduleRecord(app)
	resp := &dto.ApplicationResponse{
		ID:           app.ApplicationID,
		CandidateID:  app.CandidateID,
		RollNumber:   app.RollNumber,
		Status:       app.Status,
		SharedPaper:  toPaperSlotResponse(rec.SharedPaper),
		JobPaper:     toPaperSlotResponse(rec.JobPaper),
		VenueName:    app.VenueName,
		VenueAddress: app.VenueAddress,
		Version:      app.Version,
		CreatedAt:    app.CreatedAt.Format(timeLayout),
		UpdatedAt:    app.UpdatedAt.Format(timeLayout),
	}
	if app.Candidate != nil {
		brief := toCandidateBrief(app.Candidate)
		resp.Candidate = &brief
	}
	if app.Job != nil {
		resp.Job = &dto.JobBrief{ID: app.Job.JobID, Code: app.Job.Code, Title: app.Job.Title}
	}
	return resp
}
