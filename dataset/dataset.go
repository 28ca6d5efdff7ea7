// Package dataset 정렬 입력 데이터 생성과 텍스트 입출력 (한 줄에 정수 하나).
package dataset

import (
	"math/rand"

	"github.com/pkg/errors"
)

var (
	// ErrBadBound 상한이 0 이하
	ErrBadBound = errors.New("dataset: bound must be positive")
	// ErrNotNumeric 정수로 읽을 수 없는 줄
	ErrNotNumeric = errors.New("dataset: value is not an integer")
)

// Generate [0, n) 범위 난수 n개. 같은 seed 면 같은 데이터
func Generate(n int, seed int64) []int {
	if n <= 0 {
		return []int{}
	}
	// n > 0 이므로 ErrBadBound 는 나올 수 없음
	data, _ := GenerateBounded(n, n, seed)
	return data
}

// GenerateBounded [0, bound) 범위 난수 n개
func GenerateBounded(n, bound int, seed int64) ([]int, error) {
	if bound <= 0 {
		return nil, errors.Wrapf(ErrBadBound, "bound=%d", bound)
	}
	if n < 0 {
		n = 0
	}

	rng := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(bound)
	}
	return data, nil
}
