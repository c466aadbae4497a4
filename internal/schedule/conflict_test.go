package schedule

import (
	"fmt"
	"testing"
)

func sharedEntry(date, start, end string) PaperEntry {
	r := jobRecord(0, "", "", "", &PaperSlot{Subject: "GA", Date: date, StartTime: start, EndTime: end}, nil)
	return NewSharedEntry(&r, []string{"R1"})
}

func jobEntry(jobID int64, roll, date, start, end string) PaperEntry {
	r := jobRecord(jobID, fmt.Sprintf("Job %d", jobID), fmt.Sprintf("app-%d", jobID), roll, nil,
		&PaperSlot{Subject: fmt.Sprintf("Subject %d", jobID), Date: date, StartTime: start, EndTime: end})
	return NewJobEntry(&r)
}

// pairKey 以双方准考证号/科目标识一对冲突，与输入顺序无关
func pairKey(c ConflictEntry) string {
	a := c.SideA.RollNumber + "|" + c.SideA.Subject
	b := c.SideB.RollNumber + "|" + c.SideB.Subject
	if a > b {
		a, b = b, a
	}
	return a + "&" + b
}

func TestDetectConflicts_SharedVsSharedNeverConflict(t *testing.T) {
	entries := []PaperEntry{
		sharedEntry("2025-03-01", "10:00", "12:00"),
		sharedEntry("2025-03-01", "10:30", "11:30"),
	}
	if got := DetectConflicts(entries); len(got) != 0 {
		t.Errorf("公共科目之间不应冲突，实际 %d 条", len(got))
	}
}

func TestDetectConflicts_DifferentDates(t *testing.T) {
	entries := []PaperEntry{
		jobEntry(1, "R1", "2025-03-01", "10:00", "12:00"),
		jobEntry(2, "R2", "2025-03-02", "10:00", "12:00"),
	}
	if got := DetectConflicts(entries); len(got) != 0 {
		t.Errorf("不同日期不应冲突，实际 %d 条", len(got))
	}
}

func TestDetectConflicts_TouchingRanges(t *testing.T) {
	entries := []PaperEntry{
		jobEntry(1, "R1", "2025-03-01", "09:00:00", "11:00:00"),
		jobEntry(2, "R2", "2025-03-01", "11:00:00", "13:00:00"),
	}
	if got := DetectConflicts(entries); len(got) != 0 {
		t.Errorf("端点相接不应冲突，实际 %d 条", len(got))
	}
}

func TestDetectConflicts_MissingTime(t *testing.T) {
	entries := []PaperEntry{
		jobEntry(1, "R1", "2025-03-01", "10:00", ""),
		jobEntry(2, "R2", "2025-03-01", "10:00", "12:00"),
	}
	if got := DetectConflicts(entries); len(got) != 0 {
		t.Errorf("时间缺失不应报告冲突，实际 %d 条", len(got))
	}
}

func TestDetectConflicts_PairOrder(t *testing.T) {
	entries := []PaperEntry{
		sharedEntry("2025-03-01", "10:00", "12:00"),
		jobEntry(1, "R1", "2025-03-01", "11:00", "13:00"),
		jobEntry(2, "R2", "2025-03-01", "11:30", "12:30"),
	}
	got := DetectConflicts(entries)
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("期望 %d 条冲突，实际 %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].PaperA != w[0] || got[i].PaperB != w[1] {
			t.Errorf("第%d条冲突期望 (%d,%d)，实际 (%d,%d)", i, w[0], w[1], got[i].PaperA, got[i].PaperB)
		}
		if got[i].Message != ConflictMessage || got[i].Severity != SeverityCritical {
			t.Errorf("第%d条冲突消息或等级错误: %+v", i, got[i])
		}
	}
	if got[0].SideA.RollNumber != sharedRollMarker || got[0].SideA.JobName != generalJobMarker {
		t.Errorf("公共科目一方应为共享标记，实际 %+v", got[0].SideA)
	}
	if got[0].SideB.RollNumber != "R1" || got[0].SideB.JobName != "Job 1" {
		t.Errorf("专业科目一方信息错误，实际 %+v", got[0].SideB)
	}
}

func TestDetectConflicts_PermutationInvariant(t *testing.T) {
	base := []PaperEntry{
		sharedEntry("2025-03-01", "10:00", "12:00"),
		sharedEntry("2025-03-01", "10:00", "12:00"),
		jobEntry(1, "R1", "2025-03-01", "11:00", "13:00"),
		jobEntry(2, "R2", "2025-03-01", "12:00", "14:00"),
		jobEntry(3, "R3", "2025-03-02", "11:00", "13:00"),
		jobEntry(4, "R4", "2025-03-01", "13:30", "15:00"),
	}
	reference := make(map[string]int)
	for _, c := range DetectConflicts(base) {
		reference[pairKey(c)]++
	}

	perms := [][]int{
		{5, 4, 3, 2, 1, 0},
		{2, 0, 4, 1, 5, 3},
		{3, 5, 1, 0, 2, 4},
	}
	for _, p := range perms {
		entries := make([]PaperEntry, len(p))
		for i, idx := range p {
			entries[i] = base[idx]
		}
		got := make(map[string]int)
		for _, c := range DetectConflicts(entries) {
			if c.PaperA >= c.PaperB {
				t.Errorf("冲突下标应满足 PaperA < PaperB，实际 (%d,%d)", c.PaperA, c.PaperB)
			}
			if entries[c.PaperA].IsShared() && entries[c.PaperB].IsShared() {
				t.Error("冲突列表中不应出现两条公共科目")
			}
			got[pairKey(c)]++
		}
		if len(got) != len(reference) {
			t.Errorf("排列 %v 冲突数量 %d，期望 %d", p, len(got), len(reference))
		}
		for k, n := range reference {
			if got[k] != n {
				t.Errorf("排列 %v 冲突 %s 出现 %d 次，期望 %d", p, k, got[k], n)
			}
		}
	}
}

func TestDetectConflicts_Empty(t *testing.T) {
	got := DetectConflicts(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("空输入应返回空列表，实际 %v", got)
	}
}
