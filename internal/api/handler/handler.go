package handler

import "github.com/bagerxx/OgretmenPlan/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Calendar *CalendarHandler
	Course   *CourseHandler
	Plan     *PlanHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Calendar: NewCalendarHandler(svc.Calendar),
		Course:   NewCourseHandler(svc.Course),
		Plan:     NewPlanHandler(svc.Plan),
		Export:   NewExportHandler(svc.Export),
	}
}
