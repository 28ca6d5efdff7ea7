package mergesort

// IsSorted 오름차순(비감소) 여부. NaN 은 어떤 값과도 비교되지 않으므로 통과
func IsSorted[T Number](arr []T) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i] < arr[i-1] {
			return false
		}
	}
	return true
}

// SameElements a, b 가 같은 멀티셋인지 확인.
// NaN 끼리는 하나의 값으로 취급해 개수만 비교한다
func SameElements[T Number](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[T]int, len(a))
	nans := 0
	for _, v := range a {
		if v != v {
			nans++
			continue
		}
		counts[v]++
	}

	for _, v := range b {
		if v != v {
			nans--
			continue
		}
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}

	// 길이가 같고 음수가 없었으니 NaN 개수만 맞으면 전부 0
	return nans == 0
}
