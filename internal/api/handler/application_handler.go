package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/service"
	"admit-desk/backend/pkg/response"
)

// ApplicationHandler 岗位申请模块 HTTP 处理器
type ApplicationHandler struct {
	applicationSvc service.ApplicationService
}

// NewApplicationHandler 创建 ApplicationHandler
func NewApplicationHandler(applicationSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationSvc: applicationSvc}
}

// CreateApplication 录入岗位申请（含准考证号与考试安排）
// POST /api/v1/applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	app, err := h.applicationSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.Created(c, app)
}

// ListApplications 按联系方式列出考生全部申请
// GET /api/v1/applications?contact_key=xxx
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var req dto.ApplicationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "contact_key 不能为空")
		return
	}

	apps, err := h.applicationSvc.ListByCandidate(c.Request.Context(), req.ContactKey)
	if err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.OK(c, gin.H{"list": apps})
}

// GetApplication 获取申请详情
// GET /api/v1/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.applicationSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.OK(c, app)
}

// UpdateApplication 更新申请（乐观锁）
// PUT /api/v1/applications/:id
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	app, err := h.applicationSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.OK(c, app)
}

// WithdrawApplication 撤回申请
// PUT /api/v1/applications/:id/withdraw
func (h *ApplicationHandler) WithdrawApplication(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	app, err := h.applicationSvc.Withdraw(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.OK(c, app)
}

// DeleteApplication 删除申请
// DELETE /api/v1/applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.applicationSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleApplicationError 统一处理申请模块业务错误
func (h *ApplicationHandler) handleApplicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		response.NotFound(c, 40001, "申请不存在")
	case errors.Is(err, service.ErrApplicationExists):
		response.Conflict(c, 40002, "该考生已申请此岗位")
	case errors.Is(err, service.ErrApplicationConflict):
		response.Conflict(c, 40003, "申请已被其他操作修改，请刷新后重试")
	case errors.Is(err, service.ErrApplicationNotActive):
		response.Conflict(c, 40004, "申请当前状态不允许此操作")
	case errors.Is(err, service.ErrJobInactive):
		response.UnprocessableEntity(c, 40005, "岗位已停止招聘", "")
	case errors.Is(err, service.ErrInvalidExamDate):
		response.UnprocessableEntity(c, 40006, "考试日期格式错误", "日期格式应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrInvalidExamTime):
		response.UnprocessableEntity(c, 40007, "考试时间无效", "支持 15:04、15:04:05、3:04 PM，且结束时间须晚于开始时间")
	case errors.Is(err, service.ErrJobNotFound):
		response.NotFound(c, 30001, "岗位不存在")
	default:
		handleCandidateError(c, err)
	}
}
