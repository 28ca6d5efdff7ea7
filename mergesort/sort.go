package mergesort

// DefaultGapThreshold 삽입 병합을 선택하는 기본 간격
const DefaultGapThreshold = 3

// Sort 기본 설정으로 정렬된 새 슬라이스 반환.
// 입력은 변경하지 않으며, 길이 1 이하는 입력 그대로 돌려준다.
func Sort[T Number](arr []T) []T {
	var s Sorter[T]
	return s.Sort(arr)
}

// Sorter 병합 정책 설정
type Sorter[T Number] struct {
	// GapThreshold 삽입 병합 임계값. 0이면 DefaultGapThreshold
	GapThreshold T
	// DisableInsertion true면 삽입 병합 경로를 건너뜀
	DisableInsertion bool
	// Stats nil이 아니면 경로별 병합 횟수를 누적
	Stats *Stats
}

// Sort 정렬된 새 슬라이스 반환
func (s *Sorter[T]) Sort(arr []T) []T {
	if len(arr) <= 1 {
		return arr
	}

	m := merger[T]{
		threshold: s.GapThreshold,
		insertion: !s.DisableInsertion,
	}
	if m.threshold == 0 {
		m.threshold = DefaultGapThreshold
	}

	result := m.sortRange(arr, 0, len(arr))
	if s.Stats != nil {
		s.Stats.Add(m.stats)
	}
	return result
}

// merger 한 번의 정렬 동안 쓰는 정책 + 로컬 카운터
type merger[T Number] struct {
	threshold T
	insertion bool
	stats     Stats
}

// sortRange [start, end) 범위를 정렬한 새 슬라이스.
// arr 는 읽기만 한다.
func (m *merger[T]) sortRange(arr []T, start, end int) []T {
	n := end - start
	if n <= 1 {
		return []T{arr[start]}
	}

	mid := start + n/2
	left := m.sortRange(arr, start, mid)
	right := m.sortRange(arr, mid, end)

	return m.merge(left, right)
}
