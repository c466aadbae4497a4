package model

import "time"

// 申请状态
const (
	ApplicationStatusActive    = "active"
	ApplicationStatusWithdrawn = "withdrawn"
	ApplicationStatusRejected  = "rejected"
)

// Application 岗位申请表 — 对应 applications
// 每条申请携带独立准考证号，以及可选的公共科目与岗位专业科目安排
type Application struct {
	ApplicationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"application_id"`
	CandidateID   string `gorm:"type:uuid;not null"                             json:"candidate_id"`
	JobID         int64  `gorm:"not null"                                       json:"job_id"`
	RollNumber    string `gorm:"type:varchar(50);not null"                      json:"roll_number"`
	Status        string `gorm:"type:varchar(20);not null;default:'active'"     json:"status"` // active | withdrawn | rejected

	// 公共科目（同一考生所有申请一致）
	SharedSubject       *string    `gorm:"type:varchar(200)" json:"shared_subject,omitempty"`
	SharedDate          *time.Time `gorm:"type:date"         json:"shared_date,omitempty"`
	SharedStartTime     *string    `gorm:"type:time"         json:"shared_start_time,omitempty"`
	SharedEndTime       *string    `gorm:"type:time"         json:"shared_end_time,omitempty"`
	SharedReportingTime *string    `gorm:"type:time"         json:"shared_reporting_time,omitempty"`

	// 岗位专业科目
	JobSubject       *string    `gorm:"type:varchar(200)" json:"job_subject,omitempty"`
	JobDate          *time.Time `gorm:"type:date"         json:"job_date,omitempty"`
	JobStartTime     *string    `gorm:"type:time"         json:"job_start_time,omitempty"`
	JobEndTime       *string    `gorm:"type:time"         json:"job_end_time,omitempty"`
	JobReportingTime *string    `gorm:"type:time"         json:"job_reporting_time,omitempty"`

	VenueName    string `gorm:"type:varchar(200)" json:"venue_name,omitempty"`
	VenueAddress string `gorm:"type:varchar(500)" json:"venue_address,omitempty"`
	VersionedModel

	// 关联
	Candidate *Candidate `gorm:"foreignKey:CandidateID;references:CandidateID" json:"candidate,omitempty"`
	Job       *Job       `gorm:"foreignKey:JobID;references:JobID"             json:"job,omitempty"`
}

// TableName 指定表名
func (Application) TableName() string { return "applications" }
