package core

import "time"

// DefaultTPS is the tick rate used when a non-positive rate is requested.
const DefaultTPS = 60

// FixedStep paces simulation updates at a steady ticks-per-second rate from a
// render loop that may run faster or slower than the tick rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. The
// first call to Steps always reports one tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Steps reports how many ticks are due since the previous call, at most
// limit. Backlog beyond limit is dropped, so a stalled loop never replays a
// burst of ticks and the accumulator stays below one tick between calls.
func (f *FixedStep) Steps(limit int) int {
	if limit < 1 {
		limit = 1
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return min(n, limit)
}
