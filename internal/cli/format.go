package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"admit-desk/backend/internal/dto"
)

var (
	// fatih/color 自动识别非 TTY 并关闭着色
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

const generalJobLabel = "通用（所有岗位）"

// printJSON 以缩进 JSON 输出
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderSchedule 以表格形式输出合并考试日程与冲突
func renderSchedule(w io.Writer, s *dto.ConsolidatedScheduleResponse) {
	_, _ = headerColor.Fprintf(w, "▸ %s <%s>\n", s.Candidate.Name, s.Candidate.ContactKey)
	_, _ = dimColor.Fprintf(w, "  共 %d 场考试：公共科目 %d 场，专业科目 %d 场（生成于 %s）\n\n",
		s.TotalPapers, s.SharedPapers, s.JobSpecificPapers, s.GeneratedAt)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "科目", "日期", "时间", "准考证号", "岗位", "考点"})
	table.SetAutoWrapText(false)
	for i, p := range s.Papers {
		roll, job := p.RollNumber, p.JobTitle
		if p.IsShared {
			roll = strings.Join(p.RollNumbers, ", ")
			job = generalJobLabel
		}
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			p.Subject,
			p.ExamDate,
			p.ExamTime,
			roll,
			job,
			p.VenueName,
		})
	}
	table.Render()

	if !s.HasConflicts {
		fmt.Fprintln(w)
		_, _ = successColor.Fprintln(w, "✓ 未发现考试时间冲突")
		return
	}

	fmt.Fprintln(w)
	_, _ = warningColor.Fprintf(w, "⚠ 发现 %d 处考试时间冲突\n", len(s.Conflicts))
	conflicts := tablewriter.NewWriter(w)
	conflicts.SetHeader([]string{"日期", "考试一", "考试二", "等级"})
	conflicts.SetAutoWrapText(false)
	for _, c := range s.Conflicts {
		conflicts.Append([]string{
			c.ExamDate,
			describeSide(c.Paper1Info),
			describeSide(c.Paper2Info),
			c.Severity,
		})
	}
	conflicts.Render()
}

func describeSide(side dto.ConflictSideResponse) string {
	return fmt.Sprintf("%s %s [%s / %s]", side.Subject, side.Time, side.RollNumber, side.JobName)
}

// PrintError 输出错误信息
func PrintError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}
