package schedule

import (
	"errors"
	"testing"
)

func TestCheckSharedConsistency_Consistent(t *testing.T) {
	records := exampleRecords()
	records[1].SharedPaper.StartTime = "10:00" // 与 "10:00:00" 等价
	records = append(records, jobRecord(3, "J3", "app-3", "A3", nil, nil))

	if err := CheckSharedConsistency(records); err != nil {
		t.Errorf("公共科目一致时不应报错: %v", err)
	}
}

func TestCheckSharedConsistency_Mismatch(t *testing.T) {
	records := exampleRecords()
	records[1].SharedPaper.Date = "2025-03-08"
	records = append(records, jobRecord(3, "J3", "app-3", "A3", gaPaper(), nil))
	records[2].VenueName = "另一考点"

	err := CheckSharedConsistency(records)
	var mismatch *SharedMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("期望 SharedMismatchError，实际: %v", err)
	}
	if mismatch.CanonicalApplicationID != "app-1" {
		t.Errorf("期望基准申请 app-1，实际 %s", mismatch.CanonicalApplicationID)
	}
	if len(mismatch.MismatchedIDs) != 2 || mismatch.MismatchedIDs[0] != "app-2" || mismatch.MismatchedIDs[1] != "app-3" {
		t.Errorf("不一致申请列表错误: %v", mismatch.MismatchedIDs)
	}

	// Build 仍以第一条为准，不受校验影响
	s, err := Build(records)
	if err != nil {
		t.Fatalf("Build 应成功: %v", err)
	}
	if s.SharedPapers != 1 || s.Papers[0].ExamDate != "2025-03-01" {
		t.Errorf("Build 应保持第一条为准，实际 %+v", s.Papers[0])
	}
}

func TestCheckSharedConsistency_NoShared(t *testing.T) {
	records := []Record{jobRecord(1, "J1", "app-1", "R1", nil, nil)}
	if err := CheckSharedConsistency(records); err != nil {
		t.Errorf("无公共科目时不应报错: %v", err)
	}
}
