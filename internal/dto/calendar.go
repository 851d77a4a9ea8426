package dto

import "github.com/bagerxx/OgretmenPlan/internal/calendar"

// ── 学年日历模块 DTO ──

// HolidayRequest 假期区间
// 宗教节日只需 start（锚定日），end 省略时按固定天数展开
type HolidayRequest struct {
	Category string `json:"category" binding:"required,oneof=first_term_break second_term_break semester_break religious_a religious_b"`
	Start    string `json:"start"    binding:"required,datetime=2006-01-02"`
	End      string `json:"end"      binding:"omitempty,datetime=2006-01-02"`
}

// GenerateCalendarRequest 生成（或预览）学年日历请求
type GenerateCalendarRequest struct {
	Year      int              `json:"year"       binding:"required,min=2000,max=2100"`
	Label     string           `json:"label"      binding:"omitempty,max=200"`
	StartDate string           `json:"start_date" binding:"required,datetime=2006-01-02"` // "2025-09-08"
	EndDate   string           `json:"end_date"   binding:"required,datetime=2006-01-02"` // "2026-06-26"
	Holidays  []HolidayRequest `json:"holidays"   binding:"omitempty,max=50,dive"`
}

// WeekListRequest 周次列表查询参数
type WeekListRequest struct {
	TeachingOnly bool `form:"teaching_only"`
}

// HolidayResponse 已展开的假期区间
type HolidayResponse struct {
	Category string `json:"category"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// WeekResponse 周次信息
type WeekResponse struct {
	ID        string `json:"id,omitempty"` // 预览时为空
	Sequence  *int   `json:"sequence"`     // 假期周为 null
	Index     int    `json:"index"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"type"`
	Term      string `json:"term"`
	Label     string `json:"label"`
}

// AcademicYearResponse 学年信息
type AcademicYearResponse struct {
	ID        string            `json:"id"`
	Year      int               `json:"year"`
	Label     string            `json:"label"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Holidays  []HolidayResponse `json:"holidays"`
	Summary   calendar.Summary  `json:"summary"`
	UpdatedAt string            `json:"updated_at"`
}

// CalendarResponse 生成结果
type CalendarResponse struct {
	AcademicYear AcademicYearResponse `json:"academic_year"`
	Weeks        []WeekResponse       `json:"weeks"`
	Warnings     []string             `json:"warnings"`
}

// PreviewResponse 预览结果（不落库）
type PreviewResponse struct {
	Weeks   []WeekResponse   `json:"weeks"`
	Summary calendar.Summary `json:"summary"`
}
