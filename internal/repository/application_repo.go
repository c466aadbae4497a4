package repository

import (
	"context"

	"gorm.io/gorm"

	"admit-desk/backend/internal/model"
	pkgerrors "admit-desk/backend/pkg/errors"
)

// ApplicationRepository 岗位申请数据访问接口
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id string) (*model.Application, error)
	GetByCandidateAndJob(ctx context.Context, candidateID string, jobID int64) (*model.Application, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]model.Application, error)
	// ListActiveByCandidate 按岗位ID升序返回考生全部 active 申请（考试日程的数据源）
	ListActiveByCandidate(ctx context.Context, candidateID string) ([]model.Application, error)
	Update(ctx context.Context, app *model.Application) error
	UpdateStatus(ctx context.Context, id string, status string, updatedBy string) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type applicationRepo struct {
	db *gorm.DB
}

// NewApplicationRepo 创建 ApplicationRepository 实例
func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	if !isUUID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var app model.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Candidate").
		Where("application_id = ?", id).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByCandidateAndJob(ctx context.Context, candidateID string, jobID int64) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("job_id ASC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepo) ListActiveByCandidate(ctx context.Context, candidateID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("candidate_id = ? AND status = ?", candidateID, model.ApplicationStatusActive).
		Order("job_id ASC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepo) Update(ctx context.Context, app *model.Application) error {
	oldVersion := app.Version
	result := r.db.WithContext(ctx).
		Model(app).
		Where("application_id = ? AND version = ?", app.ApplicationID, oldVersion).
		Updates(map[string]interface{}{
			"roll_number":           app.RollNumber,
			"status":                app.Status,
			"shared_subject":        app.SharedSubject,
			"shared_date":           app.SharedDate,
			"shared_start_time":     app.SharedStartTime,
			"shared_end_time":       app.SharedEndTime,
			"shared_reporting_time": app.SharedReportingTime,
			"job_subject":           app.JobSubject,
			"job_date":              app.JobDate,
			"job_start_time":        app.JobStartTime,
			"job_end_time":          app.JobEndTime,
			"job_reporting_time":    app.JobReportingTime,
			"venue_name":            app.VenueName,
			"venue_address":         app.VenueAddress,
			"updated_by":            app.UpdatedBy,
			"version":               oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	app.Version = oldVersion + 1
	return nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status string, updatedBy string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("application_id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": nullableID(updatedBy),
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("application_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": nullableID(deletedBy),
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
