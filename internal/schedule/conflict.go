package schedule

// DetectConflicts 两两检测考试时间冲突
// 结果按 (i, j)，i < j 的遍历顺序输出；公共科目之间永不冲突，日期按字符串相等比较
func DetectConflicts(entries []PaperEntry) []ConflictEntry {
	conflicts := make([]ConflictEntry, 0)
	for i := 0; i < len(entries); i++ {
		a := &entries[i]
		for j := i + 1; j < len(entries); j++ {
			b := &entries[j]
			if a.IsShared() && b.IsShared() {
				continue
			}
			if a.ExamDate != b.ExamDate {
				continue
			}
			if !Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
				continue
			}
			conflicts = append(conflicts, ConflictEntry{
				PaperA:       i,
				PaperB:       j,
				ConflictType: ConflictTypeTimeOverlap,
				ExamDate:     a.ExamDate,
				SideA:        describe(a),
				SideB:        describe(b),
				Severity:     SeverityCritical,
				Message:      ConflictMessage,
			})
		}
	}
	return conflicts
}

func describe(e *PaperEntry) ConflictSide {
	side := ConflictSide{
		Subject:    e.Subject,
		Time:       e.ExamTime,
		RollNumber: sharedRollMarker,
		JobName:    generalJobMarker,
	}
	if e.Job != nil {
		side.RollNumber = e.Job.RollNumber
		side.JobName = e.Job.JobTitle
	}
	return side
}
