package handler

import (
	"github.com/gin-gonic/gin"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/service"
	"admit-desk/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportExamSchedule 导出考生考试日程
// GET /api/v1/export/exam-schedule?contact_key=xxx
func (h *ExportHandler) ExportExamSchedule(c *gin.Context) {
	var req dto.ExamScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "contact_key 不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportExamSchedule(c.Request.Context(), req.ContactKey)
	if err != nil {
		handleExamScheduleError(c, err)
		return
	}

	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}
