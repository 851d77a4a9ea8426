package model

import (
	"time"

	"gorm.io/datatypes"
)

// AcademicYear 学年表，对应 academic_years
// Holidays 保存生成时输入的假期区间快照，Summary 保存生成结果的统计
type AcademicYear struct {
	AcademicYearID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"academic_year_id"`
	Year           int            `gorm:"not null;uniqueIndex"                           json:"year"`
	Label          string         `gorm:"type:varchar(200);not null"                     json:"label"`
	StartDate      time.Time      `gorm:"type:date;not null"                             json:"start_date"`
	EndDate        time.Time      `gorm:"type:date;not null"                             json:"end_date"`
	Holidays       datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"               json:"holidays"`
	Summary        datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"               json:"summary"`
	BaseModel
}

// TableName 指定表名
func (AcademicYear) TableName() string { return "academic_years" }
