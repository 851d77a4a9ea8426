package calendar

import (
	"fmt"
	"time"
)

// Category 假期类别
type Category string

const (
	CategoryFirstTermBreak  Category = "first_term_break"  // 第一学期期中假
	CategorySecondTermBreak Category = "second_term_break" // 第二学期期中假
	CategorySemesterBreak   Category = "semester_break"    // 学期间寒假
	CategoryReligiousA      Category = "religious_a"       // Ramazan Bayramı，4 天
	CategoryReligiousB      Category = "religious_b"       // Kurban Bayramı，5 天
)

// religiousSpanDays 宗教节日自锚定日起的天数（含锚定日）
var religiousSpanDays = map[Category]int{
	CategoryReligiousA: 4,
	CategoryReligiousB: 5,
}

// IsFixedBreak 是否为固定假期（任意工作日重叠即整周放假）
func (c Category) IsFixedBreak() bool {
	switch c {
	case CategoryFirstTermBreak, CategorySecondTermBreak, CategorySemesterBreak:
		return true
	}
	return false
}

// IsReligious 是否为宗教节日
func (c Category) IsReligious() bool {
	_, ok := religiousSpanDays[c]
	return ok
}

// Valid 类别是否已知
func (c Category) Valid() bool {
	return c.IsFixedBreak() || c.IsReligious()
}

// Holiday 一段假期
type Holiday struct {
	Category Category `json:"category"`
	Interval
}

// ReligiousHoliday 由锚定日展开宗教节日区间
func ReligiousHoliday(cat Category, anchor time.Time) (Holiday, error) {
	span, ok := religiousSpanDays[cat]
	if !ok {
		return Holiday{}, fmt.Errorf("类别 %q 不是宗教节日", cat)
	}
	start := DateOnly(anchor)
	return Holiday{
		Category: cat,
		Interval: Interval{Start: start, End: start.AddDate(0, 0, span-1)},
	}, nil
}

// WeekType 周类型
type WeekType string

const (
	WeekTeaching WeekType = "TEACHING"
	WeekHoliday  WeekType = "HOLIDAY"
)

// Term 学期
type Term string

const (
	TermFirst  Term = "FIRST"
	TermSecond Term = "SECOND"
)

// Input 日历生成输入
type Input struct {
	Year     int
	Label    string
	Start    time.Time
	End      time.Time
	Holidays []Holiday
}

// Week 一个周一至周五的周次
// Sequence 只对教学周编号（1..N），假期周为 0；Index 为全部周次的时间顺序位置
type Week struct {
	Sequence int       `json:"sequence"`
	Index    int       `json:"index"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Type     WeekType  `json:"type"`
	Term     Term      `json:"term"`
	Label    string    `json:"label"`
}

// IsTeaching 是否为教学周
func (w Week) IsTeaching() bool { return w.Type == WeekTeaching }

// WorkingDays 日历工作日统计
type WorkingDays struct {
	Teaching   int `json:"teaching"`
	Holiday    int `json:"holiday"`
	FirstTerm  int `json:"first_term"`
	SecondTerm int `json:"second_term"`
	Total      int `json:"total"`
}

// Summary 日历汇总；学期周数只统计教学周
type Summary struct {
	TeachingWeekCount   int         `json:"teaching_week_count"`
	HolidayWeekCount    int         `json:"holiday_week_count"`
	FirstTermWeekCount  int         `json:"first_term_week_count"`
	SecondTermWeekCount int         `json:"second_term_week_count"`
	WorkingDays         WorkingDays `json:"working_days"`
}

// Result 日历生成结果
type Result struct {
	Weeks   []Week  `json:"weeks"`
	Summary Summary `json:"summary"`
}

// TeachingWeeks 按编号顺序返回教学周
func (r Result) TeachingWeeks() []Week {
	out := make([]Week, 0, r.Summary.TeachingWeekCount)
	for _, w := range r.Weeks {
		if w.IsTeaching() {
			out = append(out, w)
		}
	}
	return out
}
