package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"admit-desk/backend/config"
	"admit-desk/backend/internal/repository"
	"admit-desk/backend/internal/schedule"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

const (
	paperSheet    = "考试安排"
	conflictSheet = "时间冲突"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出考生合并考试日程为 Excel (.xlsx)，供打印准考证附页
//   - Sheet "考试安排"：按合并后的顺序逐场列出（公共科目在前）
//   - Sheet "时间冲突"：无冲突时仅保留表头
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportExamSchedule 导出考生考试日程
	ExportExamSchedule(ctx context.Context, contactKey string) (*bytes.Buffer, string, error)
}

type exportService struct {
	builder *scheduleBuilder
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{builder: newScheduleBuilder(cfg, repo, logger), logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportExamSchedule 导出考试日程为 Excel
// ═══════════════════════════════════════════════════════════
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportExamSchedule(ctx context.Context, contactKey string) (*bytes.Buffer, string, error) {
	candidate, err := s.builder.candidateByContactKey(ctx, contactKey)
	if err != nil {
		return nil, "", err
	}
	result, err := s.builder.build(ctx, candidate)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(paperSheet)
	f.SetActiveSheet(idx)
	_, _ = f.NewSheet(conflictSheet)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	warnStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#C00000"},
	})

	// ── Sheet 1: 考试安排 ──
	title := fmt.Sprintf("%s（%s）考试安排", candidate.Name, candidate.ContactKey)
	f.SetCellValue(paperSheet, "A1", title)
	f.MergeCell(paperSheet, "A1", "J1")
	f.SetCellStyle(paperSheet, "A1", "A1", headerStyle)

	paperHeaders := []string{"序号", "类型", "科目", "岗位", "准考证号", "考试日期", "报到时间", "考试时间", "考点", "考点地址"}
	writeRow(f, paperSheet, 2, paperHeaders)
	f.SetCellStyle(paperSheet, "A2", cell(colName(len(paperHeaders)-1), 2), headerStyle)

	for i := range result.Papers {
		p := &result.Papers[i]
		kind, job, roll := "专业科目", "", ""
		if p.IsShared() {
			kind, job, roll = "公共科目", "全部岗位", strings.Join(p.Shared.RollNumbers, ", ")
		} else {
			job, roll = p.Job.JobTitle, p.Job.RollNumber
		}
		row := i + 3
		writeRow(f, paperSheet, row, []string{
			fmt.Sprintf("%d", i+1), kind, p.Subject, job, roll, p.ExamDate,
			schedule.FormatClock(p.ReportingTime), p.ExamTime, p.VenueName, p.VenueAddress,
		})
		if conflicted(result.Conflicts, i) {
			f.SetCellStyle(paperSheet, cell("A", row), cell(colName(len(paperHeaders)-1), row), warnStyle)
		}
	}

	f.SetColWidth(paperSheet, "A", "B", 10)
	f.SetColWidth(paperSheet, "C", "E", 24)
	f.SetColWidth(paperSheet, "F", "H", 20)
	f.SetColWidth(paperSheet, "I", "J", 30)

	// ── Sheet 2: 时间冲突 ──
	conflictHeaders := []string{"序号", "考试日期", "科目A", "时间A", "准考证号A", "岗位A", "科目B", "时间B", "准考证号B", "岗位B", "等级", "说明"}
	writeRow(f, conflictSheet, 1, conflictHeaders)
	f.SetCellStyle(conflictSheet, "A1", cell(colName(len(conflictHeaders)-1), 1), headerStyle)

	for i, c := range result.Conflicts {
		writeRow(f, conflictSheet, i+2, []string{
			fmt.Sprintf("%d", i+1), c.ExamDate,
			c.SideA.Subject, c.SideA.Time, c.SideA.RollNumber, c.SideA.JobName,
			c.SideB.Subject, c.SideB.Time, c.SideB.RollNumber, c.SideB.JobName,
			c.Severity, c.Message,
		})
	}
	f.SetColWidth(conflictSheet, "B", "K", 18)
	f.SetColWidth(conflictSheet, "L", "L", 60)

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("考试安排_%s.xlsx", candidate.Name)
	return buf, filename, nil
}

// ── 辅助函数 ──

func writeRow(f *excelize.File, sheet string, row int, values []string) {
	for i, v := range values {
		f.SetCellValue(sheet, cell(colName(i), row), v)
	}
}

func conflicted(conflicts []schedule.ConflictEntry, paper int) bool {
	for _, c := range conflicts {
		if c.PaperA == paper || c.PaperB == paper {
			return true
		}
	}
	return false
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
