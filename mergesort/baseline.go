package mergesort

// DefaultInsertionCutoff 기준 구현에서 삽입정렬로 넘기는 구간 길이
const DefaultInsertionCutoff = 16

// Baseline 비교용 기준 정렬 설정 (슬라이스 분할 병합 정렬, 3-way 퀵소트)
type Baseline[T Number] struct {
	// Cutoff 이 길이 이하 구간은 삽입정렬. 0이면 DefaultInsertionCutoff
	Cutoff int
	// Stats nil이 아니면 TopDown 병합 횟수를 Buffered 로 누적
	Stats *Stats
}

// TopDown 기본 설정 병합 정렬
func TopDown[T Number](arr []T) []T {
	var b Baseline[T]
	return b.TopDown(arr)
}

// QuickSort 기본 설정 제자리 퀵소트
func QuickSort[T Number](arr []T) {
	var b Baseline[T]
	b.QuickSort(arr)
}

func (b *Baseline[T]) cutoff() int {
	if b.Cutoff <= 0 {
		return DefaultInsertionCutoff
	}
	return b.Cutoff
}
