package repository

import (
	"context"

	"gorm.io/gorm"

	"admit-desk/backend/internal/model"
)

// CandidateRepository 考生数据访问接口
type CandidateRepository interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	GetByID(ctx context.Context, id string) (*model.Candidate, error)
	GetByContactKey(ctx context.Context, contactKey string) (*model.Candidate, error)
	Update(ctx context.Context, candidate *model.Candidate) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

// candidateRepo CandidateRepository 的 GORM 实现
type candidateRepo struct {
	db *gorm.DB
}

// NewCandidateRepo 创建 CandidateRepository 实例
func NewCandidateRepo(db *gorm.DB) CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *model.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	if !isUUID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var candidate model.Candidate
	err := r.db.WithContext(ctx).
		Where("candidate_id = ?", id).
		First(&candidate).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) GetByContactKey(ctx context.Context, contactKey string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.WithContext(ctx).
		Where("contact_key = ?", model.NormalizeContactKey(contactKey)).
		First(&candidate).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) Update(ctx context.Context, candidate *model.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}

func (r *candidateRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Candidate{}).
		Where("candidate_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": nullableID(deletedBy),
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
