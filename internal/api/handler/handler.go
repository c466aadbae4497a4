package handler

import "admit-desk/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Candidate    *CandidateHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	ExamSchedule *ExamScheduleHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Candidate:    NewCandidateHandler(svc.Candidate),
		Job:          NewJobHandler(svc.Job),
		Application:  NewApplicationHandler(svc.Application),
		ExamSchedule: NewExamScheduleHandler(svc.ExamSchedule),
		Export:       NewExportHandler(svc.Export),
	}
}
