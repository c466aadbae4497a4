package repository

import (
	"context"

	"gorm.io/gorm"

	"admit-desk/backend/internal/model"
	pkgerrors "admit-desk/backend/pkg/errors"
)

// JobRepository 招聘岗位数据访问接口
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	List(ctx context.Context, includeInactive bool, offset, limit int) ([]model.Job, int64, error)
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id int64, deletedBy string) error
}

type jobRepo struct {
	db *gorm.DB
}

// NewJobRepo 创建 JobRepository 实例
func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).
		Where("job_id = ?", id).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) List(ctx context.Context, includeInactive bool, offset, limit int) ([]model.Job, int64, error) {
	var jobs []model.Job
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Job{})
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("job_id ASC").
		Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *model.Job) error {
	oldVersion := job.Version
	result := r.db.WithContext(ctx).
		Model(job).
		Where("job_id = ? AND version = ?", job.JobID, oldVersion).
		Updates(map[string]interface{}{
			"code":       job.Code,
			"title":      job.Title,
			"department": job.Department,
			"is_active":  job.IsActive,
			"updated_by": job.UpdatedBy,
			"version":    oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	job.Version = oldVersion + 1
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("job_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": nullableID(deletedBy),
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
