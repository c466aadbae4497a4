package dto

// ── 考生模块 DTO ──

// CreateCandidateRequest 创建考生请求
type CreateCandidateRequest struct {
	ContactKey string `json:"contact_key" binding:"required,max=255"`
	Name       string `json:"name"        binding:"required,min=1,max=100"`
	Email      string `json:"email"       binding:"omitempty,email"`
	Phone      string `json:"phone"       binding:"omitempty,max=30"`
	PhotoURL   string `json:"photo_url"   binding:"omitempty,url"`
}

// UpdateCandidateRequest 更新考生请求（ContactKey 不可修改）
type UpdateCandidateRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email"     binding:"omitempty,email"`
	Phone    *string `json:"phone"     binding:"omitempty,max=30"`
	PhotoURL *string `json:"photo_url" binding:"omitempty,url"`
}

// CandidateResponse 考生信息响应
type CandidateResponse struct {
	ID         string `json:"id"`
	ContactKey string `json:"contact_key"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// CandidateBrief 考生简要信息（嵌入申请与日程响应）
type CandidateBrief struct {
	ID         string `json:"id"`
	ContactKey string `json:"contact_key"`
	Name       string `json:"name"`
	PhotoURL   string `json:"photo_url,omitempty"`
}
