// Package harness drives workload cases through both lock strategies and
// collects per-case results.
package harness

// Result pairs one workload configuration with its measured timings. It is
// complete once built: every strategy that ran has an entry in Timings.
type Result struct {
	Readers          int              `json:"readers"`
	Writers          int              `json:"writers"`
	ReadsPerReader   int              `json:"reads_per_reader"`
	UpdatesPerWriter int              `json:"updates_per_writer"`
	Timings          map[string]int64 `json:"timings_ms"`
}
