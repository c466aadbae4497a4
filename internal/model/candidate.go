package model

import "strings"

// Candidate 考生表 — 对应 candidates
// ContactKey 为跨岗位稳定标识（小写邮箱或手机号），同一考生的所有申请挂在同一 ContactKey 下
type Candidate struct {
	CandidateID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"candidate_id"`
	ContactKey  string `gorm:"type:varchar(255);not null"                     json:"contact_key"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email       string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone       string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	PhotoURL    string `gorm:"type:varchar(500)"                              json:"photo_url,omitempty"` // 照片由文件服务存储，此处仅存引用
	SoftDeleteModel
}

// TableName 指定表名
func (Candidate) TableName() string { return "candidates" }

// NormalizeContactKey 统一 ContactKey 格式：去首尾空白、转小写
func NormalizeContactKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
