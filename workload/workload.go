// Package workload executes concurrent read/write workloads against a
// contended resource, once per lock strategy, and measures wall-clock
// elapsed time for each.
package workload

import (
	mrand "math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Strategy display names, used as timing keys throughout the pipeline.
const (
	SharedLockName    = "Shared Mutex Time"
	ExclusiveLockName = "Standard Mutex Time"
)

// DefaultTextLen is the length of the replacement text written on every
// update when Config.TextLen is zero. The large size makes the write
// critical section expensive relative to reads.
const DefaultTextLen = 100000

// Config controls the shape of one contention workload. Zero counts are
// legal and produce trivial runs.
type Config struct {
	Readers          int
	Writers          int
	ReadsPerReader   int
	UpdatesPerWriter int

	// TextLen is the replacement text length per update; zero means
	// DefaultTextLen.
	TextLen int

	// Seed is the base for per-worker RNG seeds. Zero derives seeds from
	// the current time, giving a fresh workload every run.
	Seed int64
}

// Resource is the contended state: a counter and a text field. Both are
// mutated only by writers and read only by readers, always under a lock.
type Resource struct {
	Counter int64
	Text    string
}

// Outcome is the result of measuring one strategy run.
type Outcome struct {
	Strategy string
	Elapsed  time.Duration

	// Final is the resource state after all workers finished.
	Final Resource
}

// WaitRecorder observes the time spent waiting for each lock acquisition.
// Implementations must be safe for concurrent use.
type WaitRecorder interface {
	Record(strategy string, wait time.Duration)
}

// Runner executes one workload per lock strategy against a private
// Resource. It owns live lock state and must not be copied; construct with
// NewRunner and use through the pointer.
type Runner struct {
	cfg Config

	rw sync.RWMutex
	mu sync.Mutex

	// readSink accumulates reader observations so the reads stay live.
	readSink int64

	// Recorder, if set, observes every lock acquisition wait. Leave nil
	// for undisturbed timing.
	Recorder WaitRecorder
}

// NewRunner creates a Runner for cfg.
func NewRunner(cfg Config) *Runner {
	if cfg.TextLen == 0 {
		cfg.TextLen = DefaultTextLen
	}

	return &Runner{cfg: cfg}
}

// Config returns the runner's workload configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// RunSharedLock measures the workload with readers holding the lock in
// shared mode and writers in exclusive mode. It blocks until every worker
// has finished.
func (r *Runner) RunSharedLock() Outcome {
	return r.run(SharedLockName, r.rw.RLocker(), &r.rw)
}

// RunExclusiveLock measures the same workload shape with every access,
// read or write, taking the same exclusive lock.
func (r *Runner) RunExclusiveLock() Outcome {
	return r.run(ExclusiveLockName, &r.mu, &r.mu)
}

// run executes the workload against a fresh Resource. Each strategy run
// starts from zero state so the two measurements stay independent.
func (r *Runner) run(strategy string, readLock, writeLock sync.Locker) Outcome {
	res := &Resource{}

	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(r.cfg.Readers + r.cfg.Writers)

	for i := 0; i < r.cfg.Readers; i++ {
		go func() {
			defer wg.Done()
			r.readLoop(strategy, res, readLock)
		}()
	}

	for i := 0; i < r.cfg.Writers; i++ {
		// Each writer owns its generator; writers never contend on
		// shared RNG state.
		rng := mrand.New(mrand.NewSource(r.workerSeed(i)))

		go func() {
			defer wg.Done()
			r.writeLoop(strategy, res, writeLock, rng)
		}()
	}

	wg.Wait()

	elapsed := time.Since(start)

	return Outcome{
		Strategy: strategy,
		Elapsed:  elapsed,
		Final:    *res,
	}
}

func (r *Runner) readLoop(strategy string, res *Resource, lock sync.Locker) {
	var sink int64

	for i := 0; i < r.cfg.ReadsPerReader; i++ {
		r.acquire(strategy, lock)
		// Folding both fields into the sink keeps the reads from being
		// compiled away.
		sink += res.Counter + int64(len(res.Text))
		lock.Unlock()
	}

	atomic.AddInt64(&r.readSink, sink)
}

func (r *Runner) writeLoop(
	strategy string,
	res *Resource,
	lock sync.Locker,
	rng *mrand.Rand,
) {
	for i := 0; i < r.cfg.UpdatesPerWriter; i++ {
		r.acquire(strategy, lock)
		res.Counter++
		// Text generation stays inside the critical section; the
		// allocation cost is part of the measured write path.
		res.Text = randText(rng, r.cfg.TextLen)
		lock.Unlock()
	}
}

func (r *Runner) acquire(strategy string, lock sync.Locker) {
	if r.Recorder == nil {
		lock.Lock()

		return
	}

	waitStart := time.Now()
	lock.Lock()
	r.Recorder.Record(strategy, time.Since(waitStart))
}

func (r *Runner) workerSeed(i int) int64 {
	if r.cfg.Seed != 0 {
		return r.cfg.Seed + int64(i)
	}

	return time.Now().UnixNano() + int64(i)
}
