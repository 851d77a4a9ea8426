package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bagerxx/OgretmenPlan/internal/dto"
	"github.com/bagerxx/OgretmenPlan/internal/service"
	"github.com/bagerxx/OgretmenPlan/pkg/response"
)

// CalendarHandler 学年日历模块 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// Generate 生成（或重新生成）学年日历
// POST /api/v1/calendars/generate
func (h *CalendarHandler) Generate(c *gin.Context) {
	var req dto.GenerateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.calendarSvc.Generate(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, result)
}

// Preview 预览学年日历，不落库
// POST /api/v1/calendars/preview
func (h *CalendarHandler) Preview(c *gin.Context) {
	var req dto.GenerateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.calendarSvc.Preview(c.Request.Context(), &req)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, result)
}

// ListYears 学年列表
// GET /api/v1/calendars
func (h *CalendarHandler) ListYears(c *gin.Context) {
	years, err := h.calendarSvc.ListYears(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": years})
}

// GetYear 学年详情
// GET /api/v1/calendars/:year
func (h *CalendarHandler) GetYear(c *gin.Context) {
	year, ok := mustParseYear(c)
	if !ok {
		return
	}

	result, err := h.calendarSvc.GetYear(c.Request.Context(), year)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, result)
}

// ListWeeks 学年周次列表
// GET /api/v1/calendars/:year/weeks?teaching_only=true
func (h *CalendarHandler) ListWeeks(c *gin.Context) {
	year, ok := mustParseYear(c)
	if !ok {
		return
	}

	var req dto.WeekListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	weeks, err := h.calendarSvc.ListWeeks(c.Request.Context(), year, req.TeachingOnly)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, gin.H{"list": weeks})
}

func (h *CalendarHandler) handleCalendarError(c *gin.Context, err error) {
	if validationFailed(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrAcademicYearNotFound):
		response.NotFound(c, 12001, "学年不存在")
	default:
		response.InternalError(c)
	}
}
