// Package bench drives timed modular exponentiation trials and reports
// their latencies.
package bench

import "time"

// Clock is the timer source of the harness
type Clock interface {
	// Now returns the current instant
	Now() time.Time

	// Since returns the time elapsed since start
	Since(start time.Time) time.Duration
}

// SystemClock reads the monotonic wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time { return time.Now() }

// Since returns time.Since(start)
func (SystemClock) Since(start time.Time) time.Duration { return time.Since(start) }
