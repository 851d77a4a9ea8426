package model

import "time"

// CurriculumItem 课程内容表，对应 curriculum_items
// 学习成果使用 DurationHours，技能使用 Weight
type CurriculumItem struct {
	ItemID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"item_id"`
	CourseID      string    `gorm:"type:uuid;not null;index"                       json:"course_id"`
	Kind          string    `gorm:"type:varchar(10);not null"                      json:"kind"`
	Code          string    `gorm:"type:varchar(50);not null;default:''"           json:"code"`
	Name          string    `gorm:"type:text;not null"                             json:"name"`
	DurationHours int       `gorm:"not null;default:0"                             json:"duration_hours"`
	Weight        int       `gorm:"not null;default:0"                             json:"weight"`
	Position      int       `gorm:"not null"                                       json:"position"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (CurriculumItem) TableName() string { return "curriculum_items" }
