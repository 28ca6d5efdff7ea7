package mergesort

// merge 정렬된 left, right(둘 다 비어있지 않음)를 하나로 합침.
// append -> insertion -> buffered 순서로 조건 검사.
func (m *merger[T]) merge(left, right []T) []T {
	last, first := left[len(left)-1], right[0]

	if last <= first {
		m.stats.Appends++
		return appendMerge(left, right)
	}

	// 여기서는 last > first 이므로 차이가 곧 절댓값.
	// 정수 오버플로로 음수가 나오면 간격이 큰 것으로 본다. NaN 은 비교가 false
	if m.insertion {
		if gap := last - first; gap >= 0 && gap < m.threshold {
			m.stats.Insertions++
			return insertionMerge(left, right)
		}
	}

	m.stats.Buffered++
	return bufferedMerge(left, right)
}

// appendMerge 겹치지 않는 두 구간을 새 버퍼에 이어 붙임
func appendMerge[T Number](left, right []T) []T {
	result := make([]T, len(left)+len(right))
	n := copy(result, left)
	copy(result[n:], right)
	return result
}

// insertionMerge left 복사본에 right 원소를 순서대로 삽입.
// 뒤에서부터 value 보다 큰 원소를 건너뛰고, 마지막 <= value 원소 바로 뒤에 넣는다
func insertionMerge[T Number](left, right []T) []T {
	result := make([]T, len(left), len(left)+len(right))
	copy(result, left)

	for _, value := range right {
		i := len(result) - 1
		for i >= 0 && result[i] > value {
			i--
		}
		at := i + 1

		result = append(result, value)
		copy(result[at+1:], result[at:len(result)-1])
		result[at] = value
	}

	return result
}

// bufferedMerge 두 포인터 병합. 동률이면 left 먼저
func bufferedMerge[T Number](left, right []T) []T {
	result := make([]T, len(left)+len(right))
	i, j, k := 0, 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			result[k] = left[i]
			i++
		} else {
			result[k] = right[j]
			j++
		}
		k++
	}

	// 남은 요소들 한 번에 복사
	k += copy(result[k:], left[i:])
	copy(result[k:], right[j:])

	return result
}
