// Package main provides the CLI entry point for lockmark, a benchmark
// comparing RWMutex and Mutex throughput under read-heavy contention.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/lockmark/harness"
	"github.com/weiihann/lockmark/report"
	"github.com/weiihann/lockmark/stats"
	"github.com/weiihann/lockmark/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "lockmark",
		Short: "RWMutex vs Mutex contention benchmark",
		Long: `Lockmark runs the same concurrent read/write workload twice, once
serialized by a reader-writer lock and once by a plain exclusive lock, and
prints a table comparing the elapsed wall-clock time of each.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		readers    int
		writers    int
		reads      int
		updates    int
		textLen    int
		seed       int64
		outputJSON bool
		latencies  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the lock contention benchmark",
		Long: `Run the benchmark cases and print the comparison table. Without
flags the two reference cases are measured (100 readers, 5 writers, 10000
reads per reader, 1 and 10 updates per writer). Overriding any of the
workload flags replaces them with a single custom case.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			custom := flags.Changed("readers") ||
				flags.Changed("writers") ||
				flags.Changed("reads") ||
				flags.Changed("updates")

			return runBenchmark(cmd.Context(), logger, runConfig{
				readers:    readers,
				writers:    writers,
				reads:      reads,
				updates:    updates,
				textLen:    textLen,
				seed:       seed,
				custom:     custom,
				outputJSON: outputJSON,
				latencies:  latencies,
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&readers, "readers", 100,
		"Number of concurrent reader goroutines")
	flags.IntVar(&writers, "writers", 5,
		"Number of concurrent writer goroutines")
	flags.IntVar(&reads, "reads", 10000,
		"Read operations per reader")
	flags.IntVar(&updates, "updates", 1,
		"Update operations per writer")
	flags.IntVar(&textLen, "text-len", workload.DefaultTextLen,
		"Length of the text written on every update")
	flags.Int64Var(&seed, "seed", 0,
		"Base random seed (0 = use current time)")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of a table")
	flags.BoolVar(&latencies, "latencies", false,
		"Record and print lock wait percentiles (perturbs timings)")

	return cmd
}

type runConfig struct {
	readers    int
	writers    int
	reads      int
	updates    int
	textLen    int
	seed       int64
	custom     bool
	outputJSON bool
	latencies  bool
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
) error {
	cases := benchmarkCases(cfg)

	logger.InfoContext(ctx, "starting benchmark",
		slog.Int("cases", len(cases)),
		slog.Int("text_len", cfg.textLen),
		slog.Int64("seed", cfg.seed),
	)

	var opts harness.Options

	var collector *stats.Collector
	if cfg.latencies {
		collector = stats.NewCollector()
		opts.Recorder = collector
	}

	results := harness.RunAll(ctx, logger, cases, opts)

	if cfg.outputJSON {
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(os.Stdout, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	if collector != nil {
		collector.Summarize(os.Stdout, harness.Strategies())
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}

// benchmarkCases returns the two reference cases, or a single custom case
// when any workload flag was overridden.
func benchmarkCases(cfg runConfig) []workload.Config {
	if cfg.custom {
		return []workload.Config{{
			Readers:          cfg.readers,
			Writers:          cfg.writers,
			ReadsPerReader:   cfg.reads,
			UpdatesPerWriter: cfg.updates,
			TextLen:          cfg.textLen,
			Seed:             cfg.seed,
		}}
	}

	return []workload.Config{
		{
			Readers: 100, Writers: 5,
			ReadsPerReader: 10000, UpdatesPerWriter: 1,
			TextLen: cfg.textLen, Seed: cfg.seed,
		},
		{
			Readers: 100, Writers: 5,
			ReadsPerReader: 10000, UpdatesPerWriter: 10,
			TextLen: cfg.textLen, Seed: cfg.seed,
		},
	}
}
