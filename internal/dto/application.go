package dto

// ── 岗位申请模块 DTO ──

// PaperSlotInput 单场考试安排（日期 "2006-01-02"，时间 "15:04" / "15:04:05" / "3:04 PM"）
type PaperSlotInput struct {
	Subject       string `json:"subject"        binding:"required,max=200"`
	Date          string `json:"date"           binding:"required"`
	StartTime     string `json:"start_time"     binding:"required"`
	EndTime       string `json:"end_time"       binding:"required"`
	ReportingTime string `json:"reporting_time"`
}

// CreateApplicationRequest 创建申请请求
type CreateApplicationRequest struct {
	ContactKey   string          `json:"contact_key"   binding:"required"`
	JobID        int64           `json:"job_id"        binding:"required,min=1"`
	RollNumber   string          `json:"roll_number"   binding:"required,max=50"`
	SharedPaper  *PaperSlotInput `json:"shared_paper"`
	JobPaper     *PaperSlotInput `json:"job_paper"`
	VenueName    string          `json:"venue_name"    binding:"omitempty,max=200"`
	VenueAddress string          `json:"venue_address" binding:"omitempty,max=500"`
}

// UpdateApplicationRequest 更新申请请求（Version 用于乐观锁）
type UpdateApplicationRequest struct {
	Version      int             `json:"version"       binding:"required,min=1"`
	RollNumber   *string         `json:"roll_number"   binding:"omitempty,max=50"`
	SharedPaper  *PaperSlotInput `json:"shared_paper"`
	JobPaper     *PaperSlotInput `json:"job_paper"`
	ClearShared  bool            `json:"clear_shared"` // 移除公共科目安排
	ClearJob     bool            `json:"clear_job"`    // 移除专业科目安排
	VenueName    *string         `json:"venue_name"    binding:"omitempty,max=200"`
	VenueAddress *string         `json:"venue_address" binding:"omitempty,max=500"`
}

// ApplicationListRequest 申请列表查询参数
type ApplicationListRequest struct {
	ContactKey string `form:"contact_key" binding:"required"`
}

// PaperSlotResponse 考试安排响应
type PaperSlotResponse struct {
	Subject       string `json:"subject"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	ReportingTime string `json:"reporting_time,omitempty"`
}

// ApplicationResponse 申请信息响应
type ApplicationResponse struct {
	ID           string             `json:"id"`
	CandidateID  string             `json:"candidate_id"`
	Candidate    *CandidateBrief    `json:"candidate,omitempty"`
	Job          *JobBrief          `json:"job,omitempty"`
	RollNumber   string             `json:"roll_number"`
	Status       string             `json:"status"`
	SharedPaper  *PaperSlotResponse `json:"shared_paper,omitempty"`
	JobPaper     *PaperSlotResponse `json:"job_paper,omitempty"`
	VenueName    string             `json:"venue_name,omitempty"`
	VenueAddress string             `json:"venue_address,omitempty"`
	Version      int                `json:"version"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}
