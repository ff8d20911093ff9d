package sorting

import "time"

// Clock supplies the current time to the timing harness.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Timed pairs a sorted sequence with the time it took to produce it.
type Timed[T any] struct {
	Sorted  []T
	Elapsed time.Duration
}

// Measure runs fn and reports how long it took according to clock.
// A nil clock falls back to SystemClock.
func Measure[T any](clock Clock, fn func() []T) Timed[T] {
	if clock == nil {
		clock = SystemClock
	}
	start := clock.Now()
	sorted := fn()
	return Timed[T]{Sorted: sorted, Elapsed: since(clock, start)}
}

func since(clock Clock, start time.Time) time.Duration {
	elapsed := clock.Now().Sub(start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
