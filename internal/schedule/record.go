package schedule

import "strings"

// PaperSlot 单场考试的时间地点信息（科目、日期、开始/结束/报到时间）
// Date 为 "2006-01-02"，时间为时刻字符串（"15:04:05" / "15:04" / "3:04 PM"）
type PaperSlot struct {
	Subject       string
	Date          string
	StartTime     string
	EndTime       string
	ReportingTime string
}

// empty 科目与日期均为空视为无此科目
func (p *PaperSlot) empty() bool {
	return p == nil || (strings.TrimSpace(p.Subject) == "" && strings.TrimSpace(p.Date) == "")
}

// Record 单条报考记录的考试信息，每个岗位申请一条
type Record struct {
	JobID         int64
	JobTitle      string
	ApplicationID string
	RollNumber    string // 准考证号（每个申请独立）

	SharedPaper *PaperSlot // 公共科目（同一考生所有申请一致）
	JobPaper    *PaperSlot // 岗位专业科目

	VenueName    string
	VenueAddress string
}

// HasSharedPaper 是否包含公共科目
func (r *Record) HasSharedPaper() bool { return !r.SharedPaper.empty() }

// HasJobPaper 是否包含岗位专业科目
func (r *Record) HasJobPaper() bool { return !r.JobPaper.empty() }
