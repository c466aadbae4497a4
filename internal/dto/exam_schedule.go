package dto

// ── 考试日程模块 DTO ──

// ExamScheduleRequest 按联系方式查询考试日程
type ExamScheduleRequest struct {
	ContactKey string `form:"contact_key" binding:"required"`
}

// ExamPaperResponse 单场考试（公共科目与专业科目共用）
// IsShared 为 true 时 RollNumbers/Description 有效，否则 JobTitle/JobID/RollNumber 有效
type ExamPaperResponse struct {
	Subject       string `json:"subject"`
	ExamDate      string `json:"exam_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	ReportingTime string `json:"reporting_time"`
	ExamTime      string `json:"exam_time"`
	VenueName     string `json:"venue_name"`
	VenueAddress  string `json:"venue_address"`
	IsShared      bool   `json:"is_shared"`
	ApplicationID string `json:"application_id"`

	// 公共科目
	RollNumbers []string `json:"roll_numbers,omitempty"`
	Description string   `json:"description,omitempty"`

	// 专业科目
	JobTitle   string `json:"job_title,omitempty"`
	JobID      int64  `json:"job_id,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`
}

// ConflictSideResponse 冲突一方
type ConflictSideResponse struct {
	Subject    string `json:"subject"`
	Time       string `json:"time"`
	RollNumber string `json:"roll_number"`
	JobName    string `json:"job_name"`
}

// ExamConflictResponse 时间冲突
type ExamConflictResponse struct {
	Paper1       int                  `json:"paper1"`
	Paper2       int                  `json:"paper2"`
	ConflictType string               `json:"conflict_type"`
	ExamDate     string               `json:"exam_date"`
	Paper1Info   ConflictSideResponse `json:"paper1_info"`
	Paper2Info   ConflictSideResponse `json:"paper2_info"`
	Severity     string               `json:"severity"`
	Message      string               `json:"message"`
}

// ConsolidatedScheduleResponse 考生合并考试日程
type ConsolidatedScheduleResponse struct {
	Candidate         CandidateBrief         `json:"candidate"`
	TotalPapers       int                    `json:"total_papers"`
	SharedPapers      int                    `json:"shared_papers"`
	JobSpecificPapers int                    `json:"job_specific_papers"`
	Papers            []ExamPaperResponse    `json:"papers"`
	Conflicts         []ExamConflictResponse `json:"conflicts"`
	HasConflicts      bool                   `json:"has_conflicts"`
	GeneratedAt       string                 `json:"generated_at"`
}
