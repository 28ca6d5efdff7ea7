package bench

import (
	"runtime"
	"time"
)

// sample 한 번의 측정 구간
type sample struct {
	startTime time.Time
	startMem  runtime.MemStats
}

// startSample GC 후 시작 시점 기록
func startSample() *sample {
	runtime.GC() // 측정 전 정리
	runtime.GC()

	s := &sample{}
	runtime.ReadMemStats(&s.startMem)
	s.startTime = time.Now()
	return s
}

// end 경과 시간과 구간 동안 누적 할당 바이트
func (s *sample) end() (time.Duration, uint64) {
	duration := time.Since(s.startTime)

	var endMem runtime.MemStats
	runtime.ReadMemStats(&endMem)

	return duration, endMem.TotalAlloc - s.startMem.TotalAlloc
}
