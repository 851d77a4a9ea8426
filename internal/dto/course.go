package dto

// ── 课程模块 DTO ──

// CurriculumItemRequest 课程内容
// 学习成果型课程填写 duration_hours（全部省略时平均分配），技能型课程填写 weight
type CurriculumItemRequest struct {
	Code          string `json:"code"           binding:"omitempty,max=50"`
	Name          string `json:"name"           binding:"required,max=1000"`
	DurationHours int    `json:"duration_hours" binding:"omitempty,min=1,max=500"`
	Weight        int    `json:"weight"         binding:"omitempty,min=1,max=100"`
}

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Code               string                  `json:"code"                 binding:"required,max=50"`
	Name               string                  `json:"name"                 binding:"required,min=2,max=200"`
	Grade              int                     `json:"grade"                binding:"omitempty,min=1,max=12"`
	ProgramType        string                  `json:"program_type"         binding:"required,oneof=outcome skill"`
	DefaultWeeklyHours int                     `json:"default_weekly_hours" binding:"required,min=1"`
	Items              []CurriculumItemRequest `json:"items"                binding:"omitempty,max=500,dive"`
}

// ReplaceItemsRequest 整体替换课程内容
type ReplaceItemsRequest struct {
	Items []CurriculumItemRequest `json:"items" binding:"required,max=500,dive"`
}

// CourseListRequest 课程列表查询参数
type CourseListRequest struct {
	PaginationRequest
	Grade       int    `form:"grade"        binding:"omitempty,min=1,max=12"`
	ProgramType string `form:"program_type" binding:"omitempty,oneof=outcome skill"`
}

// CurriculumItemResponse 课程内容信息
type CurriculumItemResponse struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	DurationHours int    `json:"duration_hours"`
	Weight        int    `json:"weight"`
	Position      int    `json:"position"`
}

// CourseResponse 课程信息
type CourseResponse struct {
	ID                 string                   `json:"id"`
	Code               string                   `json:"code"`
	Name               string                   `json:"name"`
	Grade              int                      `json:"grade"`
	ProgramType        string                   `json:"program_type"`
	DefaultWeeklyHours int                      `json:"default_weekly_hours"`
	Items              []CurriculumItemResponse `json:"items,omitempty"`
	CreatedAt          string                   `json:"created_at"`
}
