package sorting

import (
	"math/rand/v2"
	"time"

	"golang.org/x/exp/constraints"
)

// NewRand returns a pivot source. A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Partition returns a sorted copy of s using randomized 3-way quicksort.
// s is not modified. A nil rng is replaced by a randomly seeded one.
// NaN values are not supported; callers must filter them out first.
func Partition[T constraints.Ordered](s []T, rng *rand.Rand) []T {
	if rng == nil {
		rng = NewRand(0)
	}
	out := make([]T, len(s))
	copy(out, s)
	partitionRange(out, rng)
	return out
}

// partitionRange sorts s in place. It recurses into the smaller of the two
// outer groups and loops on the larger one, so stack depth stays O(log n)
// even when the pivot draws are unlucky.
func partitionRange[T constraints.Ordered](s []T, rng *rand.Rand) {
	for len(s) > 1 {
		lt, gt := threeWay(s, s[rng.IntN(len(s))])
		less, greater := s[:lt], s[gt:]
		if len(less) < len(greater) {
			partitionRange(less, rng)
			s = greater
		} else {
			partitionRange(greater, rng)
			s = less
		}
	}
}

// threeWay rearranges s into [< pivot | == pivot | > pivot] and returns the
// bounds of the middle group.
func threeWay[T constraints.Ordered](s []T, pivot T) (lt, gt int) {
	lt, i, gt := 0, 0, len(s)
	for i < gt {
		switch {
		case s[i] < pivot:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case s[i] > pivot:
			gt--
			s[gt], s[i] = s[i], s[gt]
		default:
			i++
		}
	}
	return lt, gt
}

// PartitionSort returns a sorted copy of s and the wall-clock time from the
// start of the root call to its return.
func PartitionSort[T constraints.Ordered](s []T, rng *rand.Rand, clock Clock) Timed[T] {
	if rng == nil {
		rng = NewRand(0)
	}
	return Measure(clock, func() []T {
		return Partition(s, rng)
	})
}

// PartitionSortCumulative sorts like PartitionSort but reports time the way a
// self-timing recursive quicksort does: each call's span plus the spans its
// two sub-calls reported. Sub-call time is therefore counted once per level
// of nesting, and the result is always at least the wall-clock time.
func PartitionSortCumulative[T constraints.Ordered](s []T, rng *rand.Rand, clock Clock) Timed[T] {
	if rng == nil {
		rng = NewRand(0)
	}
	if clock == nil {
		clock = SystemClock
	}
	sorted, elapsed := cumulative(s, rng, clock)
	return Timed[T]{Sorted: sorted, Elapsed: elapsed}
}

func cumulative[T constraints.Ordered](s []T, rng *rand.Rand, clock Clock) ([]T, time.Duration) {
	start := clock.Now()
	if len(s) <= 1 {
		out := make([]T, len(s))
		copy(out, s)
		return out, since(clock, start)
	}

	pivot := s[rng.IntN(len(s))]
	var less, equal, greater []T
	for _, v := range s {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	lessSorted, lessTime := cumulative(less, rng, clock)
	greaterSorted, greaterTime := cumulative(greater, rng, clock)

	out := make([]T, 0, len(s))
	out = append(out, lessSorted...)
	out = append(out, equal...)
	out = append(out, greaterSorted...)
	return out, since(clock, start) + lessTime + greaterTime
}
