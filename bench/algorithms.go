package bench

import (
	"gapsort/mergesort"
)

// sortFunc data 를 정렬한 결과 반환. data 를 변경해도 됨
type sortFunc func(data []int, stats *mergesort.Stats) []int

// algorithm 이름으로 정렬 함수 찾기
func algorithm(name string, gapThreshold int) (sortFunc, bool) {
	switch name {
	case "gapsort":
		return func(data []int, stats *mergesort.Stats) []int {
			s := mergesort.Sorter[int]{Stats: stats}
			if gapThreshold < 0 {
				s.DisableInsertion = true
			} else {
				s.GapThreshold = gapThreshold
			}
			return s.Sort(data)
		}, true
	case "mergesort":
		return func(data []int, stats *mergesort.Stats) []int {
			b := mergesort.Baseline[int]{Stats: stats}
			return b.TopDown(data)
		}, true
	case "quicksort":
		return func(data []int, _ *mergesort.Stats) []int {
			mergesort.QuickSort(data)
			return data
		}, true
	}
	return nil, false
}
