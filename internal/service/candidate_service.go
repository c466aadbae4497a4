package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/model"
	"admit-desk/backend/internal/repository"
)

// ── 考生模块业务错误 ──

var (
	ErrCandidateNotFound = errors.New("考生不存在")
	ErrContactKeyExists  = errors.New("该联系方式已登记")
	ErrContactKeyEmpty   = errors.New("联系方式不能为空")
)

// CandidateService 考生业务接口
type CandidateService interface {
	Create(ctx context.Context, req *dto.CreateCandidateRequest, callerID string) (*dto.CandidateResponse, error)
	GetByContactKey(ctx context.Context, contactKey string) (*dto.CandidateResponse, error)
	Update(ctx context.Context, contactKey string, req *dto.UpdateCandidateRequest, callerID string) (*dto.CandidateResponse, error)
}

type candidateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCandidateService 创建 CandidateService 实例
func NewCandidateService(repo *repository.Repository, logger *zap.Logger) CandidateService {
	return &candidateService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *candidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest, callerID string) (*dto.CandidateResponse, error) {
	key := model.NormalizeContactKey(req.ContactKey)
	if key == "" {
		return nil, ErrContactKeyEmpty
	}

	_, err := s.repo.Candidate.GetByContactKey(ctx, key)
	if err == nil {
		return nil, ErrContactKeyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询考生失败", zap.String("contact_key", key), zap.Error(err))
		return nil, err
	}

	candidate := &model.Candidate{
		ContactKey: key,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		PhotoURL:   req.PhotoURL,
	}
	candidate.CreatedBy = auditID(callerID)
	candidate.UpdatedBy = auditID(callerID)

	if err := s.repo.Candidate.Create(ctx, candidate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrContactKeyExists
		}
		s.logger.Error("创建考生失败", zap.Error(err))
		return nil, err
	}

	return toCandidateResponse(candidate), nil
}

// ────────────────────── GetByContactKey ──────────────────────

func (s *candidateService) GetByContactKey(ctx context.Context, contactKey string) (*dto.CandidateResponse, error) {
	candidate, err := s.findByContactKey(ctx, contactKey)
	if err != nil {
		return nil, err
	}
	return toCandidateResponse(candidate), nil
}

// ────────────────────── Update ──────────────────────

func (s *candidateService) Update(ctx context.Context, contactKey string, req *dto.UpdateCandidateRequest, callerID string) (*dto.CandidateResponse, error) {
	candidate, err := s.findByContactKey(ctx, contactKey)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.PhotoURL != nil {
		candidate.PhotoURL = *req.PhotoURL
	}
	candidate.UpdatedBy = auditID(callerID)

	if err := s.repo.Candidate.Update(ctx, candidate); err != nil {
		s.logger.Error("更新考生失败", zap.String("candidate_id", candidate.CandidateID), zap.Error(err))
		return nil, err
	}

	return toCandidateResponse(candidate), nil
}

// ── 内部辅助方法 ──

func (s *candidateService) findByContactKey(ctx context.Context, contactKey string) (*model.Candidate, error) {
	key := model.NormalizeContactKey(contactKey)
	if key == "" {
		return nil, ErrContactKeyEmpty
	}
	candidate, err := s.repo.Candidate.GetByContactKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		s.logger.Error("查询考生失败", zap.String("contact_key", key), zap.Error(err))
		return nil, err
	}
	return candidate, nil
}

func toCandidateResponse(c *model.Candidate) *dto.CandidateResponse {
	return &dto.CandidateResponse{
		ID:         c.CandidateID,
		ContactKey: c.ContactKey,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		PhotoURL:   c.PhotoURL,
		CreatedAt:  c.CreatedAt.Format(timeLayout),
		UpdatedAt:  c.UpdatedAt.Format(timeLayout),
	}
}

func toCandidateBrief(c *model.Candidate) dto.CandidateBrief {
	return dto.CandidateBrief{
		ID:         c.CandidateID,
		ContactKey: c.ContactKey,
		Name:       c.Name,
		PhotoURL:   c.PhotoURL,
	}
}
