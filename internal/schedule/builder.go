package schedule

import "errors"

// ErrEmptyRecords 输入记录为空（调用方须先确定考生并保证至少一条有效申请）
var ErrEmptyRecords = errors.New("schedule: records must not be empty")

// Build 将同一考生的多条报考记录合并为一份考试日程
//
// records 须已按考生与 active 状态过滤，并按岗位ID升序排列：
// 该顺序即专业科目的输出顺序，也决定以哪条记录的公共科目为准。
//
// 公共科目最多输出一次，取第一条含公共科目的记录为准，
// 准考证号则收集全部记录（含无公共科目的记录）。
func Build(records []Record) (*ConsolidatedSchedule, error) {
	if len(records) == 0 {
		return nil, ErrEmptyRecords
	}

	rollNumbers := make([]string, 0, len(records))
	for i := range records {
		rollNumbers = append(rollNumbers, records[i].RollNumber)
	}

	papers := make([]PaperEntry, 0, len(records)+1)
	sharedEmitted := false
	for i := range records {
		r := &records[i]
		if !sharedEmitted && r.HasSharedPaper() {
			papers = append(papers, NewSharedEntry(r, rollNumbers))
			sharedEmitted = true
		}
		if r.HasJobPaper() {
			papers = append(papers, NewJobEntry(r))
		}
	}

	sharedCount := 0
	if sharedEmitted {
		sharedCount = 1
	}
	conflicts := DetectConflicts(papers)

	return &ConsolidatedSchedule{
		TotalPapers:       len(papers),
		SharedPapers:      sharedCount,
		JobSpecificPapers: len(papers) - sharedCount,
		Papers:            papers,
		Conflicts:         conflicts,
		HasConflicts:      len(conflicts) > 0,
	}, nil
}
