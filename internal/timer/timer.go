// internal/timer/timer.go
package timer

import "time"

// Stopwatch measures the wall-clock time of one run. It is a plain value:
// the command starts it, threads it through the pipeline and stops it right
// before reporting.
type Stopwatch struct {
	start time.Time
	now   func() time.Time
}

// Start returns a running stopwatch.
func Start() Stopwatch {
	return StartWith(time.Now)
}

// StartWith returns a running stopwatch reading time from now.
func StartWith(now func() time.Time) Stopwatch {
	return Stopwatch{start: now(), now: now}
}

// Elapsed returns the time since Start.
func (s Stopwatch) Elapsed() time.Duration {
	if s.now == nil {
		return 0
	}
	return s.now().Sub(s.start)
}
