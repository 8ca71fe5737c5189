package engine

import (
	"runtime"
	"time"
)

// Limit names which resource bound, if any, ended a run.
type Limit int

const (
	// LimitNone means the run ended for a reason other than a
	// resource limit (saturation, or a proof was found).
	LimitNone Limit = iota
	LimitTimeout
	LimitSteps
	LimitCancelled
	LimitMemory
)

// Ctl is the cooperative control point the given-clause loop consults
// between steps (spec.md §5: "the loop yields only at step
// boundaries"). It carries no goroutine of its own — checking Ctl is
// synchronous, matching the single-threaded loop — but Stop can be
// called from another goroutine to request cancellation, mirroring
// the cancel-channel idiom the ax package uses for its solving units.
type Ctl struct {
	deadline time.Time
	hasDL    bool
	maxSteps int64
	steps    int64
	maxMemMB int64
	cancel   chan struct{}
	stopped  bool
}

// NewCtl creates a Ctl bounding a run by wall-clock timeout (zero
// means unbounded) and by step count (zero means unbounded).
func NewCtl(timeout time.Duration, maxSteps int64) *Ctl {
	c := &Ctl{maxSteps: maxSteps, cancel: make(chan struct{})}
	if timeout > 0 {
		c.deadline = time.Now().Add(timeout)
		c.hasDL = true
	}
	return c
}

// WithMemLimit bounds the run by approximate heap usage, sampled via
// runtime.ReadMemStats at each Check (zero means unbounded). This is
// a soft bound: Go's own runtime, not the OS's RSS accounting, decides
// what counts, so it tracks live heap objects rather than true process
// memory.
func (c *Ctl) WithMemLimit(mb int64) *Ctl {
	c.maxMemMB = mb
	return c
}

// Stop requests cancellation; safe to call from another goroutine and
// safe to call more than once.
func (c *Ctl) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	close(c.cancel)
}

// Tick records that one more loop step has been taken.
func (c *Ctl) Tick() { c.steps++ }

// Check reports whether the run should stop and, if so, why.
func (c *Ctl) Check() (Limit, bool) {
	select {
	case <-c.cancel:
		return LimitCancelled, true
	default:
	}
	if c.hasDL && !time.Now().Before(c.deadline) {
		return LimitTimeout, true
	}
	if c.maxSteps > 0 && c.steps >= c.maxSteps {
		return LimitSteps, true
	}
	if c.maxMemMB > 0 {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		if int64(ms.HeapAlloc/(1<<20)) >= c.maxMemMB {
			return LimitMemory, true
		}
	}
	return LimitNone, false
}
