package schedule

const (
	// SharedApplicationID 公共科目的申请ID占位：适用于全部申请
	SharedApplicationID = "ALL"
	// SharedDescription 公共科目说明文字
	SharedDescription = "Common paper applicable to all applications"

	// ConflictTypeTimeOverlap 冲突类型：时间重叠
	ConflictTypeTimeOverlap = "time_overlap"
	// SeverityCritical 冲突等级：考生无法同时参加两场考试，一律为 critical
	SeverityCritical = "critical"
	// ConflictMessage 冲突提示
	ConflictMessage = "Candidate cannot attend both exams as their timings overlap"

	sharedRollMarker = "Shared Paper"
	generalJobMarker = "General"
)

// SharedDetail 公共科目载荷
type SharedDetail struct {
	RollNumbers   []string // 全部申请的准考证号，按输入顺序，允许重复
	ApplicationID string
	Description   string
}

// JobDetail 岗位专业科目载荷
type JobDetail struct {
	JobTitle      string
	JobID         int64
	RollNumber    string
	ApplicationID string
}

// PaperEntry 合并后日程中的一场考试
// Shared 与 Job 有且仅有一个非空，只能通过 NewSharedEntry / NewJobEntry 构造
type PaperEntry struct {
	Subject       string
	ExamDate      string
	StartTime     string
	EndTime       string
	ReportingTime string
	ExamTime      string // "10:00 AM - 12:00 PM"
	VenueName     string
	VenueAddress  string

	Shared *SharedDetail
	Job    *JobDetail
}

// IsShared 是否为公共科目
func (e *PaperEntry) IsShared() bool { return e.Shared != nil }

// NewSharedEntry 以 canonical 记录的公共科目构造条目
func NewSharedEntry(canonical *Record, rollNumbers []string) PaperEntry {
	e := entryFromSlot(canonical.SharedPaper, canonical)
	e.Shared = &SharedDetail{
		RollNumbers:   rollNumbers,
		ApplicationID: SharedApplicationID,
		Description:   SharedDescription,
	}
	return e
}

// NewJobEntry 以记录自身的专业科目构造条目
func NewJobEntry(r *Record) PaperEntry {
	e := entryFromSlot(r.JobPaper, r)
	e.Job = &JobDetail{
		JobTitle:      r.JobTitle,
		JobID:         r.JobID,
		RollNumber:    r.RollNumber,
		ApplicationID: r.ApplicationID,
	}
	return e
}

func entryFromSlot(slot *PaperSlot, r *Record) PaperEntry {
	return PaperEntry{
		Subject:       slot.Subject,
		ExamDate:      slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		ReportingTime: slot.ReportingTime,
		ExamTime:      FormatExamTime(slot.StartTime, slot.EndTime),
		VenueName:     r.VenueName,
		VenueAddress:  r.VenueAddress,
	}
}

// ConflictSide 冲突一方的可读描述
type ConflictSide struct {
	Subject    string
	Time       string
	RollNumber string // 公共科目为 "Shared Paper"
	JobName    string // 公共科目为 "General"
}

// ConflictEntry 两场考试之间的时间冲突
type ConflictEntry struct {
	PaperA       int // Papers 下标，PaperA < PaperB
	PaperB       int
	ConflictType string
	ExamDate     string
	SideA        ConflictSide
	SideB        ConflictSide
	Severity     string
	Message      string
}

// ConsolidatedSchedule 考生合并后的考试日程
type ConsolidatedSchedule struct {
	TotalPapers       int
	SharedPapers      int // 0 或 1
	JobSpecificPapers int
	Papers            []PaperEntry
	Conflicts         []ConflictEntry
	HasConflicts      bool
}
