package mergesort

// Stats 병합 경로별 횟수
type Stats struct {
	Appends    int `json:"appends"`
	Insertions int `json:"insertions"`
	Buffered   int `json:"buffered"`
}

// Total 전체 병합 횟수. 길이 n 정렬이면 n-1
func (s Stats) Total() int {
	return s.Appends + s.Insertions + s.Buffered
}

// Add o 를 누적
func (s *Stats) Add(o Stats) {
	s.Appends += o.Appends
	s.Insertions += o.Insertions
	s.Buffered += o.Buffered
}

// Reset 0으로 초기화
func (s *Stats) Reset() {
	*s = Stats{}
}
