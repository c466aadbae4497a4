package dto

// ── 岗位模块 DTO ──

// CreateJobRequest 创建岗位请求
type CreateJobRequest struct {
	Code       string `json:"code"       binding:"required,max=50"`
	Title      string `json:"title"      binding:"required,max=200"`
	Department string `json:"department" binding:"omitempty,max=200"`
}

// UpdateJobRequest 更新岗位请求
type UpdateJobRequest struct {
	Code       *string `json:"code"       binding:"omitempty,max=50"`
	Title      *string `json:"title"      binding:"omitempty,max=200"`
	Department *string `json:"department" binding:"omitempty,max=200"`
	IsActive   *bool   `json:"is_active"`
}

// JobListRequest 岗位列表查询参数
type JobListRequest struct {
	PaginationRequest
	IncludeInactive bool `form:"include_inactive"`
}

// JobResponse 岗位信息响应
type JobResponse struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
	IsActive   bool   `json:"is_active"`
	Version    int    `json:"version"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// JobBrief 岗位简要信息（嵌入申请响应）
type JobBrief struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}
