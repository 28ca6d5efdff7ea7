package mergesort

// QuickSort arr 를 제자리 정렬. 피벗은 세 값의 중앙값, 피벗과 같은 값은 한 번에 제외
func (b *Baseline[T]) QuickSort(arr []T) {
	cutoff := b.cutoff()

	for len(arr) > cutoff {
		lt, gt := partition(arr)

		// 짧은 쪽만 재귀, 긴 쪽은 루프로 (스택 깊이 O(log n))
		less, greater := arr[:lt], arr[gt:]
		if len(less) < len(greater) {
			b.QuickSort(less)
			arr = greater
		} else {
			b.QuickSort(greater)
			arr = less
		}
	}

	insertionSort(arr)
}

// partition arr 를 < pivot, == pivot, > pivot 로 나눔.
// arr[:lt] < pivot, arr[lt:gt] == pivot, arr[gt:] > pivot
func partition[T Number](arr []T) (lt, gt int) {
	pivot := medianOfThree(arr[0], arr[len(arr)/2], arr[len(arr)-1])

	lt, i, gt := 0, 0, len(arr)
	for i < gt {
		switch v := arr[i]; {
		case v < pivot:
			arr[lt], arr[i] = v, arr[lt]
			lt++
			i++
		case v > pivot:
			gt--
			arr[i], arr[gt] = arr[gt], v
		default:
			i++
		}
	}
	return lt, gt
}

func medianOfThree[T Number](a, b, c T) T {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}

// insertionSort arr 전체 삽입정렬
func insertionSort[T Number](arr []T) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}
