package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bagerxx/OgretmenPlan/internal/service"
	"github.com/bagerxx/OgretmenPlan/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportPlan 导出年度教学计划
// GET /api/v1/plans/:id/export
func (h *ExportHandler) ExportPlan(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPlanExcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, contentTypeXLSX, filename, buf.Bytes())
}

// ExportCalendar 导出学年日历
// GET /api/v1/calendars/:year/ics
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	year, ok := mustParseYear(c)
	if !ok {
		return
	}

	data, filename, err := h.exportSvc.ExportCalendarICS(c.Request.Context(), year)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, contentTypeICS, filename, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		response.NotFound(c, 14001, "教学计划不存在")
	case errors.Is(err, service.ErrAcademicYearNotFound):
		response.NotFound(c, 12001, "学年不存在")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
