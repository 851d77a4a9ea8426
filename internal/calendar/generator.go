package calendar

import "time"

// Generate 将学年日期范围与假期区间转换为按时间排序的周次列表
//
// 步骤：
//  1. 起始日向后取到周一，结束日向前取到周五；起始晚于结束时返回空结果
//  2. 每次前进 7 天构造周一至周五，周五超过结束日即停止
//  3. 与任一固定假期有工作日重叠 → HOLIDAY；
//     否则宗教节日扣除已被固定假期覆盖的部分后，剩余工作日 > 2 → HOLIDAY
//  4. 周一早于学期间寒假开始 → FIRST，否则 SECOND；无寒假时全部 FIRST
//  5. 只有教学周获得连续编号
//
// 纯函数：相同输入总是得到相同输出。
func Generate(in Input) Result {
	start := NextMonday(in.Start)
	end := PreviousFriday(in.End)

	fixed, religious := splitHolidays(in.Holidays)
	termSplit, hasSplit := semesterBreakStart(in.Holidays)

	result := Result{Weeks: []Week{}}
	sequence := 0
	index := 0

	for monday := start; ; monday = monday.AddDate(0, 0, 7) {
		friday := monday.AddDate(0, 0, 4)
		if friday.After(end) {
			break
		}
		index++

		week := Week{
			Index: index,
			Start: monday,
			End:   friday,
			Type:  classifyWeek(Interval{Start: monday, End: friday}, fixed, religious),
			Term:  TermFirst,
			Label: WeekLabel(monday, friday),
		}
		if hasSplit && !monday.Before(termSplit) {
			week.Term = TermSecond
		}
		if week.IsTeaching() {
			sequence++
			week.Sequence = sequence
		}

		result.Weeks = append(result.Weeks, week)
		result.Summary.add(week)
	}

	return result
}

func (s *Summary) add(w Week) {
	days := Interval{Start: w.Start, End: w.End}.WorkingDays()
	s.WorkingDays.Total += days

	if !w.IsTeaching() {
		s.HolidayWeekCount++
		s.WorkingDays.Holiday += days
		return
	}

	s.TeachingWeekCount++
	s.WorkingDays.Teaching += days
	if w.Term == TermFirst {
		s.FirstTermWeekCount++
		s.WorkingDays.FirstTerm += days
	} else {
		s.SecondTermWeekCount++
		s.WorkingDays.SecondTerm += days
	}
}

// religiousThreshold 宗教节日剩余工作日超过该值时整周放假
const religiousThreshold = 2

func classifyWeek(week Interval, fixed, religious []Interval) WeekType {
	for _, b := range fixed {
		if week.WeekdayOverlap(b) > 0 {
			return WeekHoliday
		}
	}

	for _, r := range religious {
		if religiousResidual(week, r, fixed) > religiousThreshold {
			return WeekHoliday
		}
	}
	return WeekTeaching
}

// religiousResidual 本周与宗教节日重叠的工作日，扣除节日整体落在固定假期内的工作日
// 扣除量按节日区间（而非本周）计算，并以本周重叠量封顶
func religiousResidual(week, religious Interval, fixed []Interval) int {
	overlap := week.WeekdayOverlap(religious)
	if overlap == 0 {
		return 0
	}
	covered := 0
	for _, b := range fixed {
		covered += religious.WeekdayOverlap(b)
	}
	if covered > overlap {
		covered = overlap
	}
	return overlap - covered
}

func splitHolidays(holidays []Holiday) (fixed, religious []Interval) {
	for _, h := range holidays {
		iv := h.Interval.normalized()
		switch {
		case h.Category.IsFixedBreak():
			fixed = append(fixed, iv)
		case h.Category.IsReligious():
			religious = append(religious, iv)
		}
	}
	return fixed, religious
}

// semesterBreakStart 最早的学期间寒假开始日
func semesterBreakStart(holidays []Holiday) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, h := range holidays {
		if h.Category != CategorySemesterBreak {
			continue
		}
		s := DateOnly(h.Start)
		if !found || s.Before(earliest) {
			earliest = s
			found = true
		}
	}
	return earliest, found
}
