package schedule

import (
	"fmt"
	"strings"
)

// SharedMismatchError 公共科目信息在不同申请之间不一致
type SharedMismatchError struct {
	CanonicalApplicationID string
	MismatchedIDs          []string
}

func (e *SharedMismatchError) Error() string {
	return fmt.Sprintf("schedule: shared paper of applications [%s] differs from canonical application %s",
		strings.Join(e.MismatchedIDs, ", "), e.CanonicalApplicationID)
}

// CheckSharedConsistency 校验所有含公共科目的记录与第一条一致（科目、日期、时间、考点）
// Build 本身不做该校验，仍以第一条为准；由调用方决定告警还是拒绝
func CheckSharedConsistency(records []Record) error {
	var canonical *Record
	var mismatched []string
	for i := range records {
		r := &records[i]
		if !r.HasSharedPaper() {
			continue
		}
		if canonical == nil {
			canonical = r
			continue
		}
		if !sameSharedPaper(canonical, r) {
			mismatched = append(mismatched, r.ApplicationID)
		}
	}
	if len(mismatched) == 0 {
		return nil
	}
	return &SharedMismatchError{
		CanonicalApplicationID: canonical.ApplicationID,
		MismatchedIDs:          mismatched,
	}
}

func sameSharedPaper(a, b *Record) bool {
	pa, pb := a.SharedPaper, b.SharedPaper
	return pa.Subject == pb.Subject &&
		pa.Date == pb.Date &&
		sameClock(pa.StartTime, pb.StartTime) &&
		sameClock(pa.EndTime, pb.EndTime) &&
		sameClock(pa.ReportingTime, pb.ReportingTime) &&
		a.VenueName == b.VenueName
}

// sameClock "10:00" 与 "10:00:00" 视为相同
func sameClock(a, b string) bool {
	sa, okA := ParseClock(a)
	sb, okB := ParseClock(b)
	if okA && okB {
		return sa == sb
	}
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
