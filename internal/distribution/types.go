package distribution

// Item 待分配的课程内容（学习成果或技能）
type Item struct {
	ID            string
	Name          string
	DurationHours int // 课时模式下的所需课时
	Weight        int // 权重模式下的权重
	Position      int
}

// Week 可用的教学周
type Week struct {
	ID       string
	Sequence int
}

// Allocation 某内容在某周分得的课时
type Allocation struct {
	ItemID       string `json:"item_id"`
	WeekID       string `json:"week_id"`
	WeekSequence int    `json:"week_sequence"`
	Hours        int    `json:"hours"`
	Position     int    `json:"position"` // 输出顺序，从 1 开始
}

// Shortfall 教学周用尽后未能安排的课时
type Shortfall struct {
	ItemID       string `json:"item_id"`
	MissingHours int    `json:"missing_hours"`
}

// Result 分配结果；Shortfalls 按内容顺序排列
type Result struct {
	Allocations []Allocation `json:"allocations"`
	Shortfalls  []Shortfall  `json:"shortfalls"`
}

// TotalShortfall 全部未安排课时之和
func (r Result) TotalShortfall() int {
	total := 0
	for _, s := range r.Shortfalls {
		total += s.MissingHours
	}
	return total
}

// HoursByItem 各内容已分配课时
func (r Result) HoursByItem() map[string]int {
	out := make(map[string]int)
	for _, a := range r.Allocations {
		out[a.ItemID] += a.Hours
	}
	return out
}

// HoursByWeek 各周已分配课时
func (r Result) HoursByWeek() map[string]int {
	out := make(map[string]int)
	for _, a := range r.Allocations {
		out[a.WeekID] += a.Hours
	}
	return out
}
