// Package stats collects opt-in lock acquisition wait histograms.
package stats

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector records per-strategy lock wait times. It implements
// workload.WaitRecorder and is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	hists map[string]*hdrhistogram.Histogram
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{hists: make(map[string]*hdrhistogram.Histogram)}
}

// Record adds one lock acquisition wait under the given strategy key.
func (c *Collector) Record(strategy string, wait time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.hists[strategy]
	if !ok {
		// 1us to 10min, 3 significant figures.
		h = hdrhistogram.New(1, int64(10*time.Minute/time.Microsecond), 3)
		c.hists[strategy] = h
	}

	_ = h.RecordValue(wait.Microseconds())
}

// Count returns the number of waits recorded for a strategy.
func (c *Collector) Count(strategy string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.hists[strategy]
	if !ok {
		return 0
	}

	return h.TotalCount()
}

// Summarize writes one percentile line per strategy, in the given order.
// Strategies with no recorded waits are skipped.
func (c *Collector) Summarize(w io.Writer, order []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, strategy := range order {
		h, ok := c.hists[strategy]
		if !ok || h.TotalCount() == 0 {
			continue
		}

		fmt.Fprintf(w,
			"%s lock wait: p50=%s p90=%s p99=%s max=%s (n=%d)\n",
			strategy,
			formatUs(h.ValueAtQuantile(50)),
			formatUs(h.ValueAtQuantile(90)),
			formatUs(h.ValueAtQuantile(99)),
			formatUs(h.Max()),
			h.TotalCount(),
		)
	}
}

func formatUs(us int64) string {
	if us < 1000 {
		return fmt.Sprintf("%dus", us)
	}

	return fmt.Sprintf("%.2fms", float64(us)/1000)
}
