package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"admit-desk/backend/internal/dto"
	"admit-desk/backend/internal/service"
	"admit-desk/backend/pkg/response"
)

// CandidateHandler 考生模块 HTTP 处理器
type CandidateHandler struct {
	candidateSvc service.CandidateService
}

// NewCandidateHandler 创建 CandidateHandler
func NewCandidateHandler(candidateSvc service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateSvc: candidateSvc}
}

// CreateCandidate 登记考生
// POST /api/v1/candidates
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	candidate, err := h.candidateSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCandidateError(c, err)
		return
	}

	response.Created(c, candidate)
}

// GetCandidate 按联系方式查询考生
// GET /api/v1/candidates/:contact_key
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.candidateSvc.GetByContactKey(c.Request.Context(), c.Param("contact_key"))
	if err != nil {
		handleCandidateError(c, err)
		return
	}

	response.OK(c, candidate)
}

// UpdateCandidate 更新考生信息
// PUT /api/v1/candidates/:contact_key
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	candidate, err := h.candidateSvc.Update(c.Request.Context(), c.Param("contact_key"), &req, callerID)
	if err != nil {
		handleCandidateError(c, err)
		return
	}

	response.OK(c, candidate)
}

// handleCandidateError 统一处理考生模块业务错误
// 日程、申请等模块同样可能返回考生错误，共用此映射
func handleCandidateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCandidateNotFound):
		response.NotFound(c, 20001, "考生不存在")
	case errors.Is(err, service.ErrContactKeyExists):
		response.Conflict(c, 20002, "该联系方式已登记")
	case errors.Is(err, service.ErrContactKeyEmpty):
		response.BadRequest(c, 20003, "联系方式不能为空")
	default:
		response.InternalError(c)
	}
}
