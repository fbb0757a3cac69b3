// SPDX-License-Identifier: MIT
// Package timing measures one call with a monotonic clock and reports the result.
//
// Design:
//   • Clock abstracts the time source; SystemClock relies on the monotonic
//     reading carried by time.Now, so Sub is immune to wall-clock adjustments.
//   • Measure times exactly one invocation: no warm-up, no retries, no averaging.
//   • A Sample is created once, read by the Reporter and discarded.
package timing

import (
	"errors"
	"fmt"
	"time"
)

// ErrNilFunc is returned when Measure is given nothing to time.
var ErrNilFunc = errors.New("timing: nil function")

// Clock is a source of timestamps for interval measurement.
type Clock interface {
	Now() time.Time
}

// SystemClock is the process clock; its timestamps carry a monotonic reading.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Kind identifies which pipeline produced a sample.
type Kind string

// Pipeline kinds.
const (
	KindInteger Kind = "integer"
	KindDouble  Kind = "double"
)

// Sample is a single measured duration around one multiplication.
type Sample struct {
	Kind    Kind          // pipeline that was timed
	Order   string        // loop order name ("jk" / "kj")
	Elapsed time.Duration // end.Sub(start), monotonic
}

// Seconds returns the elapsed time as fractional seconds.
func (s Sample) Seconds() float64 { return s.Elapsed.Seconds() }

// Measure calls fn exactly once between two clock readings.
// If fn fails, the error is returned wrapped and no sample is produced.
func Measure(clock Clock, kind Kind, order string, fn func() error) (Sample, error) {
	if fn == nil {
		return Sample{}, ErrNilFunc
	}
	if clock == nil {
		clock = SystemClock{}
	}

	start := clock.Now()
	err := fn()
	end := clock.Now()
	if err != nil {
		return Sample{}, fmt.Errorf("Measure(%s): %w", kind, err)
	}

	return Sample{Kind: kind, Order: order, Elapsed: end.Sub(start)}, nil
}
