package model

// Job 招聘岗位表 — 对应 jobs
// JobID 自增，升序即考生日程中专业科目的排列顺序
type Job struct {
	JobID      int64  `gorm:"primaryKey;autoIncrement"   json:"job_id"`
	Code       string `gorm:"type:varchar(50);not null"  json:"code"`
	Title      string `gorm:"type:varchar(200);not null" json:"title"`
	Department string `gorm:"type:varchar(200)"          json:"department,omitempty"`
	IsActive   bool   `gorm:"not null;default:true"      json:"is_active"`
	VersionedModel
}

// TableName 指定表名
func (Job) TableName() string { return "jobs" }
