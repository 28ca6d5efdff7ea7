// Package bench 정렬 알고리즘 벤치마크 실행과 결과 리포트.
package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gapsort/config"
	"gapsort/dataset"
	"gapsort/kvdb"
	"gapsort/mergesort"

	"github.com/convox/logger"
	"github.com/pkg/errors"
)

var (
	// ErrUnsorted 정렬 결과 검증 실패
	ErrUnsorted = errors.New("bench: result is not a sorted permutation")
	// ErrUnknownAlgorithm 등록되지 않은 알고리즘
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")
)

const (
	memorySource = "memory"
	fileSource   = "file"
)

// Runner 계획에 따라 벤치마크 실행
type Runner struct {
	Config config.Config
	// Store nil 이면 메모리에서만 실행
	Store kvdb.Store
	// Source Store 가 있을 때 결과에 기록할 이름 (보통 백엔드 이름)
	Source string
	// InputDir Store 가 없고 이 값이 있으면 입력을 텍스트 파일로 쓰고 다시 읽음
	InputDir string
	Log      *logger.Logger
}

// InputName 크기별 입력 데이터셋 이름
func InputName(size int) string {
	return fmt.Sprintf("%d/input", size)
}

// SortedName 크기별 정렬 결과 데이터셋 이름
func SortedName(size int) string {
	return fmt.Sprintf("%d/sorted", size)
}

// InputFile 크기별 입력 텍스트 파일 이름
func InputFile(size int) string {
	return fmt.Sprintf("input_%d.txt", size)
}

// SortedFile 크기별 정렬 결과 텍스트 파일 이름
func SortedFile(size int) string {
	return fmt.Sprintf("sorted_%d.txt", size)
}

// Run 크기 × 알고리즘 × 반복 횟수만큼 실행. ctx 취소 시 그때까지의 결과와 에러 반환
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	log := r.logger().At("run").Start()

	type job struct {
		name string
		fn   sortFunc
	}
	jobs := make([]job, 0, len(r.Config.Algorithms))
	for _, name := range r.Config.Algorithms {
		fn, ok := algorithm(name, r.Config.GapThreshold)
		if !ok {
			return nil, log.Error(errors.Wrapf(ErrUnknownAlgorithm, "%q", name))
		}
		jobs = append(jobs, job{name, fn})
	}

	var results []Result
	for _, size := range r.Config.Sizes {
		data, source, err := r.prepare(size)
		if err != nil {
			return results, log.Error(err)
		}

		for _, j := range jobs {
			for run := 1; run <= r.Config.Runs; run++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}

				res, sorted, err := runOnce(j.name, j.fn, data)
				if err != nil {
					return results, log.Error(errors.Wrapf(err, "%s n=%d run=%d", j.name, size, run))
				}
				res.Source = source
				res.Run = run
				results = append(results, res)

				log.Logf("algorithm=%s size=%d source=%s run=%d duration=%s", j.name, size, source, run, res.Duration)

				if j.name == "gapsort" && run == 1 {
					if err := r.saveSorted(size, sorted); err != nil {
						return results, log.Error(err)
					}
				}
			}
		}
	}

	log.Successf("results=%d", len(results))
	return results, nil
}

// prepare 입력 생성. 저장소나 입력 디렉터리가 있으면 저장 후 다시 읽어서 사용
func (r *Runner) prepare(size int) ([]int, string, error) {
	data := dataset.Generate(size, r.Config.Seed)
	if r.Store == nil {
		if r.InputDir != "" {
			return r.prepareFile(size, data)
		}
		return data, memorySource, nil
	}

	if err := r.Store.Save(InputName(size), data); err != nil {
		return nil, "", err
	}
	loaded, err := r.Store.Load(InputName(size))
	if err != nil {
		return nil, "", err
	}

	source := r.Source
	if source == "" {
		source = "store"
	}
	return loaded, source, nil
}

// prepareFile 텍스트 파일로 쓰고 다시 읽음. 읽기에서 숫자가 아닌 줄은 거부됨
func (r *Runner) prepareFile(size int, data []int) ([]int, string, error) {
	if err := os.MkdirAll(r.InputDir, 0o755); err != nil {
		return nil, "", errors.Wrap(err, "bench: input dir")
	}

	path := filepath.Join(r.InputDir, InputFile(size))
	if err := dataset.WriteFile(path, data); err != nil {
		return nil, "", err
	}
	loaded, err := dataset.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return loaded, fileSource, nil
}

// saveSorted gapsort 첫 실행 결과를 입력과 같은 곳에 남김
func (r *Runner) saveSorted(size int, sorted []int) error {
	switch {
	case r.Store != nil:
		return r.Store.Save(SortedName(size), sorted)
	case r.InputDir != "":
		return dataset.WriteFile(filepath.Join(r.InputDir, SortedFile(size)), sorted)
	}
	return nil
}

// runOnce 입력 복사본으로 한 번 정렬하고 검증
func runOnce(name string, fn sortFunc, data []int) (Result, []int, error) {
	testData := make([]int, len(data))
	copy(testData, data)

	var merges mergesort.Stats
	s := startSample()
	sorted := fn(testData, &merges)
	duration, mem := s.end()

	if !mergesort.IsSorted(sorted) || !mergesort.SameElements(data, sorted) {
		return Result{}, nil, ErrUnsorted
	}

	return Result{
		Algorithm:   name,
		DataSize:    len(data),
		Duration:    duration,
		MemoryUsage: mem,
		Merges:      merges,
	}, sorted, nil
}

func (r *Runner) logger() *logger.Logger {
	if r.Log != nil {
		return r.Log
	}
	return logger.NewWriter("ns=bench", io.Discard)
}
