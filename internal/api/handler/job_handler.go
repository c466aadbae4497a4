package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/service"
	"admit-desk/backend/pkg/response"
)

// JobHandler 岗位模块 HTTP 处理器
type JobHandler struct {
	jobSvc service.JobService
}

// NewJobHandler 创建 JobHandler
func NewJobHandler(jobSvc service.JobService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

// ListJobs 获取岗位列表（分页）
// GET /api/v1/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.JobListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	jobs, total, err := h.jobSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, jobs, total, req.GetPage(), req.GetPageSize())
}

// GetJob 获取岗位详情
// GET /api/v1/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	job, err := h.jobSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleJobError(c, err)
		return
	}

	response.OK(c, job)
}

// CreateJob 创建岗位
// POST /api/v1/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	job, err := h.jobSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleJobError(c, err)
		return
	}

	response.Created(c, job)
}

// UpdateJob 更新岗位
// PUT /api/v1/jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	job, err := h.jobSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleJobError(c, err)
		return
	}

	response.OK(c, job)
}

// DeleteJob 删除岗位
// DELETE /api/v1/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseJobID(c)
	if !ok {
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.jobSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleJobError(c, err)
		return
	}

	response.OK(c, nil)
}

func parseJobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "岗位ID无效")
		return 0, false
	}
	return id, true
}

// handleJobError 统一处理岗位模块业务错误
func (h *JobHandler) handleJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		response.NotFound(c, 30001, "岗位不存在")
	case errors.Is(err, service.ErrJobCodeExists):
		response.Conflict(c, 30002, "岗位编码已存在")
	case errors.Is(err, service.ErrJobConflict):
		response.Conflict(c, 30003, "岗位已被其他操作修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}
