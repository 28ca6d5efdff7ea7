package mergesort

// TopDown 절반씩 잘라 정렬한 새 슬라이스 반환. 병합은 항상 bufferedMerge
func (b *Baseline[T]) TopDown(arr []T) []T {
	if len(arr) <= 1 {
		return arr
	}

	var stats Stats
	result := topDown(arr, b.cutoff(), &stats)
	if b.Stats != nil {
		b.Stats.Add(stats)
	}
	return result
}

func topDown[T Number](arr []T, cutoff int, stats *Stats) []T {
	if len(arr) <= cutoff {
		result := make([]T, len(arr))
		copy(result, arr)
		insertionSort(result)
		return result
	}

	mid := len(arr) / 2
	left := topDown(arr[:mid], cutoff, stats)
	right := topDown(arr[mid:], cutoff, stats)

	stats.Buffered++
	return bufferedMerge(left, right)
}
