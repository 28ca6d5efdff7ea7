package mergesort

import "golang.org/x/exp/constraints"

// Number 정렬 대상 숫자 타입 (정수 + 실수)
type Number interface {
	constraints.Integer | constraints.Float
}
