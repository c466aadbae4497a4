package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Candidate   CandidateRepository
	Job         JobRepository
	Application ApplicationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Candidate:   NewCandidateRepo(db),
		Job:         NewJobRepo(db),
		Application: NewApplicationRepo(db),
	}
}

// nullableID 审计人ID非 UUID（含空串）时写入 NULL
func nullableID(id string) interface{} {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	return id
}

// isUUID 主键为 uuid 列，非法ID直接视为不存在，避免数据库类型错误
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
