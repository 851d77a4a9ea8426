package model

import "time"

// 周类型
const (
	WeekTypeTeaching = "TEACHING"
	WeekTypeHoliday  = "HOLIDAY"
)

// Week 周次表，对应 weeks
// 假期周 Sequence 为 NULL；WeekIndex 为全年按时间顺序的位置
type Week struct {
	WeekID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"week_id"`
	AcademicYearID string    `gorm:"type:uuid;not null;index"                       json:"academic_year_id"`
	Sequence       *int      `gorm:"column:sequence"                                json:"sequence,omitempty"`
	WeekIndex      int       `gorm:"not null"                                       json:"week_index"`
	StartDate      time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Type           string    `gorm:"type:varchar(10);not null"                      json:"type"`
	Term           string    `gorm:"type:varchar(10);not null"                      json:"term"`
	Label          string    `gorm:"type:varchar(64);not null"                      json:"label"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Week) TableName() string { return "weeks" }

// IsTeaching 是否为教学周
func (w *Week) IsTeaching() bool { return w.Type == WeekTypeTeaching }

// SequenceOrZero 教学周序号，假期周返回 0
func (w *Week) SequenceOrZero() int {
	if w.Sequence == nil {
		return 0
	}
	return *w.Sequence
}
