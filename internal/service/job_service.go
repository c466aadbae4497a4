package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/model"
	"admit-desk/backend/internal/repository"
	pkgerrors "admit-desk/backend/pkg/errors"
)

// ── 岗位模块业务错误 ──

var (
	ErrJobNotFound   = errors.New("岗位不存在")
	ErrJobCodeExists = errors.New("岗位编码已存在")
	ErrJobConflict   = errors.New("岗位已被其他操作修改，请刷新后重试")
)

// JobService 岗位业务接口
type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest, callerID string) (*dto.JobResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.JobResponse, error)
	List(ctx context.Context, req *dto.JobListRequest) ([]dto.JobResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateJobRequest, callerID string) (*dto.JobResponse, error)
	Delete(ctx context.Context, id int64, callerID string) error
}

type jobService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewJobService 创建 JobService 实例
func NewJobService(repo *repository.Repository, logger *zap.Logger) JobService {
	return &jobService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest, callerID string) (*dto.JobResponse, error) {
	job := &model.Job{
		Code:       req.Code,
		Title:      req.Title,
		Department: req.Department,
		IsActive:   true,
	}
	job.Version = 1
	job.CreatedBy = auditID(callerID)
	job.UpdatedBy = auditID(callerID)

	if err := s.repo.Job.Create(ctx, job); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrJobCodeExists
		}
		s.logger.Error("创建岗位失败", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}

	return toJobResponse(job), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *jobService) GetByID(ctx context.Context, id int64) (*dto.JobResponse, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// ────────────────────── List ──────────────────────

func (s *jobService) List(ctx context.Context, req *dto.JobListRequest) ([]dto.JobResponse, int64, error) {
	jobs, total, err := s.repo.Job.List(ctx, req.IncludeInactive, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出岗位失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		result = append(result, *toJobResponse(&jobs[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *jobService) Update(ctx context.Context, id int64, req *dto.UpdateJobRequest, callerID string) (*dto.JobResponse, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		job.Code = *req.Code
	}
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	job.UpdatedBy = auditID(callerID)

	if err := s.repo.Job.Update(ctx, job); err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrOptimisticLock):
			return nil, ErrJobConflict
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrJobCodeExists
		}
		s.logger.Error("更新岗位失败", zap.Int64("job_id", id), zap.Error(err))
		return nil, err
	}

	return toJobResponse(job), nil
}

// ────────────────────── Delete ──────────────────────

func (s *jobService) Delete(ctx context.Context, id int64, callerID string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Job.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除岗位失败", zap.Int64("job_id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *jobService) find(ctx context.Context, id int64) (*model.Job, error) {
	job, err := s.repo.Job.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		s.logger.Error("查询岗位失败", zap.Int64("job_id", id), zap.Error(err))
		return nil, err
	}
	return job, nil
}

func toJobResponse(j *model.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:         j.JobID,
		Code:       j.Code,
		Title:      j.Title,
		Department: j.Department,
		IsActive:   j.IsActive,
		Version:    j.Version,
		CreatedAt:  j.CreatedAt.Format(timeLayout),
		UpdatedAt:  j.UpdatedAt.Format(timeLayout),
	}
}
