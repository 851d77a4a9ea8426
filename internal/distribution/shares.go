package distribution

import "math"

// WeightedShares 按权重比例折算份额，四舍五入到整数课时，不做余数修正
// 总权重为 0 时全部返回 0
func WeightedShares(total int, weights []int) []int {
	shares := make([]int, len(weights))
	totalWeight := 0
	for _, w := range weights {
		if w > 0 {
			totalWeight += w
		}
	}
	if totalWeight == 0 || total <= 0 {
		return shares
	}
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		shares[i] = int(math.Round(float64(total) * float64(w) / float64(totalWeight)))
	}
	return shares
}

// EqualShares 平均分配 total 课时给 n 个内容，余数依次加给前面的内容
func EqualShares(total, n int) []int {
	if n <= 0 {
		return []int{}
	}
	shares := make([]int, n)
	if total <= 0 {
		return shares
	}
	base, rem := total/n, total%n
	for i := range shares {
		shares[i] = base
		if i < rem {
			shares[i]++
		}
	}
	return shares
}
