package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"gapsort/mergesort"

	"github.com/dustin/go-humanize"
)

// Result 한 번의 정렬 측정 결과
type Result struct {
	Algorithm   string          `json:"algorithm"`
	DataSize    int             `json:"data_size"`
	Source      string          `json:"source"`
	Run         int             `json:"run"`
	Duration    time.Duration   `json:"duration"`
	MemoryUsage uint64          `json:"memory_usage_bytes"`
	Merges      mergesort.Stats `json:"merges"`
}

// Summary 알고리즘/크기/소스별 평균
type Summary struct {
	Algorithm   string
	DataSize    int
	Source      string
	Runs        int
	AvgDuration time.Duration
	AvgMemory   uint64
}

type group struct {
	size   int
	source string
}

// groups 처음 나온 순서대로 (크기, 소스) 묶음
func groups(results []Result) []group {
	var out []group
	seen := map[group]bool{}
	for _, r := range results {
		g := group{r.DataSize, r.Source}
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}

// Summarize 결과에 나온 순서를 유지하며 평균 계산
func Summarize(results []Result) []Summary {
	type key struct {
		algorithm string
		group
	}

	var order []key
	sums := map[key]*Summary{}
	for _, r := range results {
		k := key{r.Algorithm, group{r.DataSize, r.Source}}
		s, ok := sums[k]
		if !ok {
			s = &Summary{Algorithm: r.Algorithm, DataSize: r.DataSize, Source: r.Source}
			sums[k] = s
			order = append(order, k)
		}
		s.Runs++
		s.AvgDuration += r.Duration
		s.AvgMemory += r.MemoryUsage
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		s := sums[k]
		s.AvgDuration /= time.Duration(s.Runs)
		s.AvgMemory /= uint64(s.Runs)
		out = append(out, *s)
	}
	return out
}

// WriteMarkdown 크기/소스별 실행 표와 평균 표
func WriteMarkdown(w io.Writer, results []Result) error {
	writer := bufio.NewWriterSize(w, 32*1024)

	fmt.Fprintf(writer, "# Sort benchmark results\n\n")
	fmt.Fprintf(writer, "CPU cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(writer, "GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	for _, g := range groups(results) {
		fmt.Fprintf(writer, "## %s - %s items\n\n", g.source, humanize.Comma(int64(g.size)))
		fmt.Fprintf(writer, "| algorithm | run | duration | memory | appends | insertions | buffered |\n")
		fmt.Fprintf(writer, "|-----------|-----|----------|--------|---------|------------|----------|\n")

		for _, r := range results {
			if r.DataSize != g.size || r.Source != g.source {
				continue
			}
			fmt.Fprintf(writer, "| %s | %d | %v | %s | %d | %d | %d |\n",
				r.Algorithm, r.Run, r.Duration, humanize.Bytes(r.MemoryUsage),
				r.Merges.Appends, r.Merges.Insertions, r.Merges.Buffered)
		}
		fmt.Fprintf(writer, "\n")
	}

	fmt.Fprintf(writer, "## Summary\n\n")
	fmt.Fprintf(writer, "| algorithm | size | source | runs | avg duration | avg memory |\n")
	fmt.Fprintf(writer, "|-----------|------|--------|------|--------------|------------|\n")
	for _, s := range Summarize(results) {
		fmt.Fprintf(writer, "| %s | %s | %s | %d | %v | %s |\n",
			s.Algorithm, humanize.Comma(int64(s.DataSize)), s.Source, s.Runs,
			s.AvgDuration, humanize.Bytes(s.AvgMemory))
	}

	return writer.Flush()
}

// WriteJSON 들여쓰기 JSON 배열
func WriteJSON(w io.Writer, results []Result) error {
	writer := bufio.NewWriterSize(w, 32*1024)

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return err
	}
	return writer.Flush()
}
