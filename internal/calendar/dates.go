package calendar

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// DateLayout 对外日期格式
const DateLayout = "2006-01-02"

// DateOnly 截断为 UTC 零点，去掉时分秒与时区
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate 解析 YYYY-MM-DD；失败时返回指向 field 的 ValidationError
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, apperrors.FieldInvalid(field, "不能为空")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.FieldInvalid(field, fmt.Sprintf("日期 %q 无法解析，应为 YYYY-MM-DD", value))
	}
	return t, nil
}

// NextMonday 返回 t 当天或之后的第一个周一
func NextMonday(t time.Time) time.Time {
	t = DateOnly(t)
	offset := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset)
}

// PreviousFriday 返回 t 当天或之前的最后一个周五
func PreviousFriday(t time.Time) time.Time {
	t = DateOnly(t)
	offset := (int(t.Weekday()) - int(time.Friday) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// Interval 闭区间 [Start, End]，按日期比较
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval 创建按日期截断的区间
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: DateOnly(start), End: DateOnly(end)}
}

// Overlaps 两个闭区间是否有任意一天重叠
func (iv Interval) Overlaps(other Interval) bool {
	a, b := iv.normalized(), other.normalized()
	return !a.Start.After(b.End) && !a.End.Before(b.Start)
}

// WeekdayOverlap 两个闭区间交集中周一至周五的天数
func (iv Interval) WeekdayOverlap(other Interval) int {
	a, b := iv.normalized(), other.normalized()
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	return countWeekdays(start, end)
}

// WorkingDays 区间内周一至周五的天数
func (iv Interval) WorkingDays() int {
	n := iv.normalized()
	return countWeekdays(n.Start, n.End)
}

func (iv Interval) normalized() Interval {
	return Interval{Start: DateOnly(iv.Start), End: DateOnly(iv.End)}
}

func countWeekdays(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			count++
		}
	}
	return count
}

// ── 周次标题 ──

var monthNames = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// WeekLabel 生成周次标题：同月 "8-12 Eylül"，跨月 "29 Eylül - 3 Ekim"
func WeekLabel(monday, friday time.Time) string {
	if monday.Month() == friday.Month() {
		return fmt.Sprintf("%d-%d %s", monday.Day(), friday.Day(), monthNames[monday.Month()-1])
	}
	return fmt.Sprintf("%d %s - %d %s",
		monday.Day(), monthNames[monday.Month()-1],
		friday.Day(), monthNames[friday.Month()-1])
}
