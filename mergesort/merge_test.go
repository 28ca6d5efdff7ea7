package mergesort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendMerge(t *testing.T) {
	got := appendMerge([]int{1, 2}, []int{2, 5, 6})
	assert.Equal(t, []int{1, 2, 2, 5, 6}, got)
	assert.Equal(t, 5, cap(got), "sized once")
}

func TestInsertionMerge(t *testing.T) {
	tests := []struct {
		left, right, want []int
	}{
		{[]int{5, 6}, []int{4, 7}, []int{4, 5, 6, 7}},
		{[]int{1, 3, 5}, []int{2, 4, 6}, []int{1, 2, 3, 4, 5, 6}},
		{[]int{3, 4}, []int{1, 2}, []int{1, 2, 3, 4}},
		{[]int{2, 2}, []int{2}, []int{2, 2, 2}},
		{[]int{9}, []int{0, 0, 10}, []int{0, 0, 9, 10}},
	}

	for _, tc := range tests {
		left := append([]int(nil), tc.left...)
		got := insertionMerge(left, tc.right)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.left, left, "left is copied, not modified")
	}
}

func TestBufferedMerge(t *testing.T) {
	tests := []struct {
		left, right, want []int
	}{
		{[]int{1, 9}, []int{2, 8}, []int{1, 2, 8, 9}},
		{[]int{10, 20, 30}, []int{1}, []int{1, 10, 20, 30}},
		{[]int{1}, []int{10, 20, 30}, []int{1, 10, 20, 30}},
		{[]int{2, 2}, []int{2}, []int{2, 2, 2}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, bufferedMerge(tc.left, tc.right))
	}
}

// TestMerge_Policy 조건 검사 순서: append -> insertion -> buffered
func TestMerge_Policy(t *testing.T) {
	m := merger[int]{threshold: DefaultGapThreshold, insertion: true}

	m.merge([]int{2, 2}, []int{2})   // last == first
	m.merge([]int{1, 4}, []int{2})   // gap 2
	m.merge([]int{1, 5}, []int{2})   // gap 3
	m.merge([]int{1, 100}, []int{0}) // gap 100

	assert.Equal(t, Stats{Appends: 1, Insertions: 1, Buffered: 2}, m.stats)
}
