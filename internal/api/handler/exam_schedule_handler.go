package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/service"
	"admit-desk/backend/pkg/response"
)

// ExamScheduleHandler 考试日程模块 HTTP 处理器
type ExamScheduleHandler struct {
	scheduleSvc service.ExamScheduleService
}

// NewExamScheduleHandler 创建 ExamScheduleHandler
func NewExamScheduleHandler(scheduleSvc service.ExamScheduleService) *ExamScheduleHandler {
	return &ExamScheduleHandler{scheduleSvc: scheduleSvc}
}

// GetExamSchedule 按联系方式查询考生合并考试日程
// GET /api/v1/exam-schedule?contact_key=xxx
func (h *ExamScheduleHandler) GetExamSchedule(c *gin.Context) {
	var req dto.ExamScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "contact_key 不能为空")
		return
	}

	result, err := h.scheduleSvc.GetByContactKey(c.Request.Context(), req.ContactKey)
	if err != nil {
		handleExamScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetMyExamSchedule 考生查询本人考试日程
// GET /api/v1/exam-schedule/me
func (h *ExamScheduleHandler) GetMyExamSchedule(c *gin.Context) {
	candidateID, ok := MustGetCandidateID(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.GetByCandidateID(c.Request.Context(), candidateID)
	if err != nil {
		handleExamScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// handleExamScheduleError 统一处理考试日程与导出的业务错误
func handleExamScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveApplications):
		response.NotFound(c, 50001, "该考生没有有效的岗位申请")
	case errors.Is(err, service.ErrSharedPaperMismatch):
		response.UnprocessableEntity(c, 50002, "考生各申请的公共科目安排不一致", "请先修正公共科目信息后再查询")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		handleCandidateError(c, err)
	}
}
