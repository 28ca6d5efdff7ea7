// Command sortbench 정렬 알고리즘 벤치마크. 결과는 benchmark_results.md / .json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gapsort/bench"
	"gapsort/config"
	"gapsort/kvdb"

	"github.com/convox/logger"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	markdownFile = "benchmark_results.md"
	jsonFile     = "benchmark_results.json"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath, outDir string

	cmd := &cobra.Command{
		Use:          "sortbench",
		Short:        "Benchmark gapsort against baseline sorting algorithms",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.Output.Dir = outDir
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "benchmark plan (YAML)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for result files")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	log := logger.NewWriter("ns=sortbench", os.Stderr)
	runner := bench.Runner{Config: cfg, Log: log}

	switch {
	case cfg.Store.Backend == config.FileBackend:
		runner.InputDir = cfg.Store.Dir
	case cfg.Store.Backend != "":
		backend, err := kvdb.ParseBackend(cfg.Store.Backend)
		if err != nil {
			return err
		}
		store, err := kvdb.Open(backend, cfg.Store.Dir)
		if err != nil {
			return err
		}
		defer store.Close()

		runner.Store = store
		runner.Source = string(backend)
	}

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := writeResults(cfg.Output.Dir, results); err != nil {
		return err
	}

	for _, s := range bench.Summarize(results) {
		fmt.Printf("%-10s %10s items  %-8s avg %-14v %s\n",
			s.Algorithm, humanize.Comma(int64(s.DataSize)), s.Source, s.AvgDuration, humanize.Bytes(s.AvgMemory))
	}
	log.Successf("dir=%s", cfg.Output.Dir)
	return nil
}

func writeResults(dir string, results []bench.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "output dir")
	}

	writers := []struct {
		name  string
		write func(f *os.File) error
	}{
		{markdownFile, func(f *os.File) error { return bench.WriteMarkdown(f, results) }},
		{jsonFile, func(f *os.File) error { return bench.WriteJSON(f, results) }},
	}

	for _, w := range writers {
		path := filepath.Join(dir, w.name)
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create %s", path)
		}
		if err := w.write(f); err != nil {
			f.Close()
			return errors.Wrapf(err, "write %s", path)
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "close %s", path)
		}
	}
	return nil
}
