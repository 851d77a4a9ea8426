package model

// 课程大纲类型
const (
	ProgramOutcome = "outcome" // 学习成果型，按课时分配
	ProgramSkill   = "skill"   // 技能型，按权重分配
)

// Course 课程表，对应 courses
type Course struct {
	CourseID           string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	Code               string           `gorm:"type:varchar(50);not null"                      json:"code"`
	Name               string           `gorm:"type:varchar(200);not null"                     json:"name"`
	Grade              int              `gorm:"not null;default:0"                             json:"grade"`
	ProgramType        string           `gorm:"type:varchar(10);not null"                      json:"program_type"`
	DefaultWeeklyHours int              `gorm:"not null"                                       json:"default_weekly_hours"`
	Items              []CurriculumItem `gorm:"foreignKey:CourseID;references:CourseID"        json:"items,omitempty"`
	SoftDeleteModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
