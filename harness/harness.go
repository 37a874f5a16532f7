package harness

import (
	"context"
	"log/slog"

	"github.com/weiihann/lockmark/workload"
)

// Strategies returns the timing keys in measurement order: the shared-lock
// variant is always measured before the exclusive one.
func Strategies() []string {
	return []string{workload.SharedLockName, workload.ExclusiveLockName}
}

// Options holds optional knobs for a suite run.
type Options struct {
	// Recorder, if set, observes every lock acquisition wait across all
	// cases. Recording adds two clock reads per acquisition, so leave it
	// nil for undisturbed timings.
	Recorder workload.WaitRecorder
}

// RunAll executes each case in submission order through a fresh runner and
// returns one Result per case. Nothing is caught or retried: a failure in
// any worker aborts the whole run.
func RunAll(
	ctx context.Context,
	logger *slog.Logger,
	cases []workload.Config,
	opts Options,
) []Result {
	results := make([]Result, 0, len(cases))

	for i, cfg := range cases {
		runner := workload.NewRunner(cfg)
		runner.Recorder = opts.Recorder

		logger.InfoContext(ctx, "running case",
			slog.Int("case", i+1),
			slog.Int("readers", cfg.Readers),
			slog.Int("writers", cfg.Writers),
			slog.Int("reads_per_reader", cfg.ReadsPerReader),
			slog.Int("updates_per_writer", cfg.UpdatesPerWriter),
		)

		shared := runner.RunSharedLock()
		exclusive := runner.RunExclusiveLock()

		logger.InfoContext(ctx, "case finished",
			slog.Int("case", i+1),
			slog.Duration("shared", shared.Elapsed),
			slog.Duration("exclusive", exclusive.Elapsed),
		)

		results = append(results, Result{
			Readers:          cfg.Readers,
			Writers:          cfg.Writers,
			ReadsPerReader:   cfg.ReadsPerReader,
			UpdatesPerWriter: cfg.UpdatesPerWriter,
			Timings: map[string]int64{
				shared.Strategy:    shared.Elapsed.Milliseconds(),
				exclusive.Strategy: exclusive.Elapsed.Milliseconds(),
			},
		})
	}

	return results
}
