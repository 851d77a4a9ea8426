package distribution

import (
	"sort"

	apperrors "github.com/bagerxx/OgretmenPlan/pkg/errors"
)

// cursor 当前周位置与该周已用课时，按值传递，每一步返回新值
type cursor struct {
	weekIndex int
	hoursUsed int
}

func (c cursor) next() cursor { return cursor{weekIndex: c.weekIndex + 1} }

// state 折叠过程中的累积状态
type state struct {
	cur         cursor
	allocations []Allocation
	index       map[allocKey]int // item+week → allocations 下标
	shortfalls  []Shortfall
}

type allocKey struct{ itemID, weekID string }

// Distribute 课时模式：按顺序把每个内容的所需课时贪心地填入教学周
//
// 每周最多 capacity 课时；一个内容可跨多周，一周可容纳多个内容。
// 教学周用尽后剩余课时记入 Shortfalls，不返回错误。
func Distribute(items []Item, weeks []Week, capacity int) (Result, error) {
	if capacity <= 0 {
		return Result{}, apperrors.FieldInvalid("weekly_hours", "每周课时必须大于 0")
	}
	demands := make([]demand, 0, len(items))
	for _, it := range sortedItems(items) {
		demands = append(demands, demand{itemID: it.ID, hours: it.DurationHours})
	}
	return run(demands, sortedWeeks(weeks), capacity), nil
}

// DistributeByWeight 权重模式：先按权重把总可用课时折算为每个内容的份额，再贪心放置
//
// 份额 = round(总可用课时 × 权重 / 总权重)，不做余数修正，份额之和可能与总课时相差几小时。
func DistributeByWeight(items []Item, weeks []Week, capacity int) (Result, error) {
	if capacity <= 0 {
		return Result{}, apperrors.FieldInvalid("weekly_hours", "每周课时必须大于 0")
	}
	ordered := sortedItems(items)
	weights := make([]int, len(ordered))
	for i, it := range ordered {
		weights[i] = it.Weight
	}
	shares := WeightedShares(len(weeks)*capacity, weights)

	demands := make([]demand, len(ordered))
	for i, it := range ordered {
		demands[i] = demand{itemID: it.ID, hours: shares[i]}
	}
	return run(demands, sortedWeeks(weeks), capacity), nil
}

type demand struct {
	itemID string
	hours  int
}

func run(demands []demand, weeks []Week, capacity int) Result {
	s := state{index: make(map[allocKey]int)}
	for _, dm := range demands {
		s = place(s, dm, weeks, capacity)
	}
	return Result{Allocations: nonNil(s.allocations), Shortfalls: nonNilShortfalls(s.shortfalls)}
}

// place 放置一个内容，返回推进后的状态
func place(s state, dm demand, weeks []Week, capacity int) state {
	remaining := dm.hours
	cur := s.cur

	for remaining > 0 && cur.weekIndex < len(weeks) {
		available := capacity - cur.hoursUsed
		if available <= 0 {
			cur = cur.next()
			continue
		}

		take := min(remaining, available)
		s = emit(s, dm.itemID, weeks[cur.weekIndex], take)
		remaining -= take
		cur = cursor{weekIndex: cur.weekIndex, hoursUsed: cur.hoursUsed + take}

		if cur.hoursUsed == capacity {
			cur = cur.next()
		}
	}

	if remaining > 0 {
		s.shortfalls = append(s.shortfalls, Shortfall{ItemID: dm.itemID, MissingHours: remaining})
	}
	s.cur = cur
	return s
}

// emit 追加分配；同一内容同一周已存在时累加
func emit(s state, itemID string, week Week, hours int) state {
	key := allocKey{itemID: itemID, weekID: week.ID}
	if i, ok := s.index[key]; ok {
		s.allocations[i].Hours += hours
		return s
	}
	s.index[key] = len(s.allocations)
	s.allocations = append(s.allocations, Allocation{
		ItemID:       itemID,
		WeekID:       week.ID,
		WeekSequence: week.Sequence,
		Hours:        hours,
		Position:     len(s.allocations) + 1,
	})
	return s
}

func sortedItems(items []Item) []Item {
	out := append([]Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func sortedWeeks(weeks []Week) []Week {
	out := append([]Week(nil), weeks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out
}

func nonNil(a []Allocation) []Allocation {
	if a == nil {
		return []Allocation{}
	}
	return a
}

func nonNilShortfalls(s []Shortfall) []Shortfall {
	if s == nil {
		return []Shortfall{}
	}
	return s
}
