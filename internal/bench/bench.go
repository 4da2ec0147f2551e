// Package bench times repeated executions of a function and formats the
// resulting durations for people.
package bench

import (
	"errors"
	"fmt"
	"time"
)

// DefaultSamples is the number of timed runs per part.
const DefaultSamples = 25

// ErrNoSamples is returned when Measure is asked for fewer than one sample.
var ErrNoSamples = errors.New("bench: sample count must be positive")

// Clock provides the current time. Tests substitute a deterministic clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Stats summarises a set of timed runs.
type Stats struct {
	Samples int
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
}

// Measure runs fn n times, timing each run with clock. The first error from
// fn aborts the measurement.
func Measure(clock Clock, n int, fn func() error) (Stats, error) {
	if n < 1 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrNoSamples, n)
	}
	if clock == nil {
		clock = SystemClock{}
	}

	stats := Stats{Samples: n}
	var total time.Duration
	for i := 0; i < n; i++ {
		start := clock.Now()
		if err := fn(); err != nil {
			return Stats{}, fmt.Errorf("sample %d: %w", i+1, err)
		}
		d := clock.Now().Sub(start)

		total += d
		if i == 0 || d < stats.Min {
			stats.Min = d
		}
		if d > stats.Max {
			stats.Max = d
		}
	}
	stats.Avg = total / time.Duration(n)
	return stats, nil
}

var units = []struct {
	suffix string
	size   time.Duration
}{
	{"s", time.Second},
	{"ms", time.Millisecond},
	{"μs", time.Microsecond},
	{"ns", time.Nanosecond},
}

// Humanize formats d in the largest unit that keeps the value at or above
// one, with two decimals: "1.50 s", "12.00 ms", "3.25 μs", "800.00 ns".
func Humanize(d time.Duration) string {
	for _, u := range units[:len(units)-1] {
		if d >= u.size {
			return fmt.Sprintf("%.2f %s", float64(d)/float64(u.size), u.suffix)
		}
	}
	return fmt.Sprintf("%.2f ns", float64(d))
}
