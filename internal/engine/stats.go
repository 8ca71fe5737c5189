package engine

import "time"

// Stats accumulates counters over a saturation run, read by callers
// for progress reporting and by tests asserting on seed scenarios
// (spec.md §8).
type Stats struct {
	Steps      int64
	Given      int64
	Generated  int64
	Discarded  int64
	Simplified int64
	Elapsed    time.Duration
}
