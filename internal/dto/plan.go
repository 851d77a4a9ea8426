package dto

// ── 教学计划模块 DTO ──

// DistributeRequest 为 (班级, 课程, 学年) 生成课时分配
type DistributeRequest struct {
	ClassName   string `json:"class_name"   binding:"required,max=50"` // "9-A"
	CourseID    string `json:"course_id"    binding:"required,uuid"`
	Year        int    `json:"year"         binding:"required,min=2000,max=2100"`
	WeeklyHours int    `json:"weekly_hours" binding:"omitempty,min=1"` // 省略时使用课程默认值
	Mode        string `json:"mode"         binding:"omitempty,oneof=hours weight equal"`
	Name        string `json:"name"         binding:"omitempty,max=200"`
}

// CopyPlanRequest 复制计划到另一学年
type CopyPlanRequest struct {
	TargetYear int    `json:"target_year" binding:"required,min=2000,max=2100"`
	Name       string `json:"name"        binding:"omitempty,max=200"`
}

// UpdateAllocationRequest 更新单条分配的进度
type UpdateAllocationRequest struct {
	Completed *bool   `json:"completed"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
}

// PlanListRequest 计划列表查询参数
type PlanListRequest struct {
	PaginationRequest
	Year      int    `form:"year"       binding:"omitempty,min=2000,max=2100"`
	CourseID  string `form:"course_id"  binding:"omitempty,uuid"`
	ClassName string `form:"class_name" binding:"omitempty,max=50"`
}

// PlanResponse 计划信息
type PlanResponse struct {
	ID             string `json:"id"`
	ClassName      string `json:"class_name"`
	CourseID       string `json:"course_id"`
	AcademicYearID string `json:"academic_year_id"`
	Name           string `json:"name"`
	WeeklyHours    int    `json:"weekly_hours"`
	Mode           string `json:"mode"`
	TotalHours     int    `json:"total_hours"`
	ShortfallHours int    `json:"shortfall_hours"`
	Version        int    `json:"version"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// AllocationResponse 单条课时分配
type AllocationResponse struct {
	ID           string `json:"id,omitempty"`
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	WeekID       string `json:"week_id"`
	WeekSequence int    `json:"week_sequence"`
	WeekLabel    string `json:"week_label"`
	Hours        int    `json:"hours"`
	Position     int    `json:"position"`
	Completed    bool   `json:"completed"`
	Notes        string `json:"notes"`
}

// ShortfallResponse 未能安排的课时
type ShortfallResponse struct {
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	MissingHours int    `json:"missing_hours"`
}

// PlanDetailResponse 计划详情（含分配）
type PlanDetailResponse struct {
	Plan        PlanResponse         `json:"plan"`
	Allocations []AllocationResponse `json:"allocations"`
	Shortfalls  []ShortfallResponse  `json:"shortfalls"`
	Warnings    []string             `json:"warnings,omitempty"`
}

// CopyPlanResponse 复制结果
type CopyPlanResponse struct {
	PlanDetailResponse
	DroppedAllocations int `json:"dropped_allocations"`
}

// PlanStatsResponse 计划统计
type PlanStatsResponse struct {
	PlanID               string `json:"plan_id"`
	TotalHours           int    `json:"total_hours"` // 教学周数 × 每周课时
	UsedHours            int    `json:"used_hours"`
	RemainingHours       int    `json:"remaining_hours"`
	UsagePercent         int    `json:"usage_percent"`
	CompletedHours       int    `json:"completed_hours"`
	CompletedAllocations int    `json:"completed_allocations"`
	TotalAllocations     int    `json:"total_allocations"`
	CompletionPercent    int    `json:"completion_percent"`
	ShortfallHours       int    `json:"shortfall_hours"`
}
