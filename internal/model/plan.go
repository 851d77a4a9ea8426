package model

import "gorm.io/datatypes"

// 分配模式
const (
	ModeHours  = "hours"  // 按内容课时顺序填充
	ModeWeight = "weight" // 按权重折算份额
	ModeEqual  = "equal"  // 未给课时的学习成果平均分配
)

// Plan 年度教学计划表，对应 plans
// (ClassName, CourseID, AcademicYearID) 唯一，重新分配时覆盖
type Plan struct {
	PlanID         string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"plan_id"`
	ClassName      string         `gorm:"type:varchar(50);not null"                      json:"class_name"`
	CourseID       string         `gorm:"type:uuid;not null"                             json:"course_id"`
	AcademicYearID string         `gorm:"type:uuid;not null"                             json:"academic_year_id"`
	Name           string         `gorm:"type:varchar(200);not null"                     json:"name"`
	WeeklyHours    int            `gorm:"not null"                                       json:"weekly_hours"`
	Mode           string         `gorm:"type:varchar(10);not null"                      json:"mode"`
	TotalHours     int            `gorm:"not null;default:0"                             json:"total_hours"`
	ShortfallHours int            `gorm:"not null;default:0"                             json:"shortfall_hours"`
	Shortfalls     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"               json:"shortfalls"`
	VersionedModel
}

// TableName 指定表名
func (Plan) TableName() string { return "plans" }
