package bench_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"gapsort/bench"
	"gapsort/config"
	"gapsort/dataset"
	"gapsort/kvdb"
	"gapsort/mergesort"

	"github.com/convox/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Sizes = []int{100, 500}
	cfg.Runs = 2
	return cfg
}

func TestRunner_Memory(t *testing.T) {
	var logs bytes.Buffer
	r := bench.Runner{
		Config: smallConfig(),
		Log:    logger.NewWriter("ns=test", &logs),
	}

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2*3*2, "sizes x algorithms x runs")

	for _, res := range results {
		assert.Equal(t, "memory", res.Source)
		assert.Contains(t, config.AllAlgorithms, res.Algorithm)
		switch res.Algorithm {
		case "gapsort":
			assert.Equal(t, res.DataSize-1, res.Merges.Total())
		case "mergesort":
			assert.Positive(t, res.Merges.Buffered)
			assert.Equal(t, res.Merges.Buffered, res.Merges.Total())
		default:
			assert.Zero(t, res.Merges.Total())
		}
	}
	assert.Equal(t, 1, results[0].Run)
	assert.Equal(t, 2, results[1].Run)
	assert.Contains(t, logs.String(), "state=success results=12")
}

func TestRunner_Store(t *testing.T) {
	s, err := kvdb.Open(kvdb.Bolt, filepath.Join(t.TempDir(), "bbolt"))
	require.NoError(t, err)
	defer s.Close()

	cfg := smallConfig()
	cfg.Algorithms = []string{"gapsort"}
	r := bench.Runner{Config: cfg, Store: s, Source: string(kvdb.Bolt)}

	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "bbolt", results[0].Source)

	for _, size := range cfg.Sizes {
		input, err := s.Load(bench.InputName(size))
		require.NoError(t, err)
		assert.Equal(t, dataset.Generate(size, cfg.Seed), input)

		sorted, err := s.Load(bench.SortedName(size))
		require.NoError(t, err)
		assert.Equal(t, mergesort.Sort(input), sorted)
	}
}

// TestRunner_File 입력을 텍스트 파일로 왕복시키고 정렬 결과도 파일로 남김
func TestRunner_File(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "inputs")
	cfg := smallConfig()
	cfg.Algorithms = []string{"gapsort", "quicksort"}

	results, err := (&bench.Runner{Config: cfg, InputDir: dir}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2*2*2)
	for _, res := range results {
		assert.Equal(t, "file", res.Source)
	}

	for _, size := range cfg.Sizes {
		input, err := dataset.ReadFile(filepath.Join(dir, bench.InputFile(size)))
		require.NoError(t, err)
		assert.Equal(t, dataset.Generate(size, cfg.Seed), input)

		sorted, err := dataset.ReadFile(filepath.Join(dir, bench.SortedFile(size)))
		require.NoError(t, err)
		assert.Equal(t, mergesort.Sort(input), sorted)
	}
}

// TestRunner_FileUnwritable 입력 디렉터리를 만들 수 없으면 실행 전에 실패
func TestRunner_FileUnwritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	results, err := (&bench.Runner{Config: smallConfig(), InputDir: filepath.Join(blocker, "inputs")}).Run(context.Background())
	assert.Error(t, err)
	assert.Empty(t, results)
}

func TestRunner_DisabledInsertion(t *testing.T) {
	cfg := smallConfig()
	cfg.Algorithms = []string{"gapsort"}
	cfg.GapThreshold = -1

	results, err := (&bench.Runner{Config: cfg}).Run(context.Background())
	require.NoError(t, err)
	for _, res := range results {
		assert.Zero(t, res.Merges.Insertions)
	}
}

func TestRunner_UnknownAlgorithm(t *testing.T) {
	cfg := smallConfig()
	cfg.Algorithms = []string{"bogosort"}

	_, err := (&bench.Runner{Config: cfg}).Run(context.Background())
	assert.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := (&bench.Runner{Config: smallConfig()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
