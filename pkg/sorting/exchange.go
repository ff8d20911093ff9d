package sorting

import "golang.org/x/exp/constraints"

// Exchange sorts s in place with repeated adjacent-swap passes.
//
// Each pass bubbles the largest value of the unsorted prefix to its end, so
// the prefix shrinks by one per pass. The loop stops early on a pass that makes
// no swaps, which makes already-sorted input a single O(n) pass.
// NaN values are not supported; callers must filter them out first.
func Exchange[T constraints.Ordered](s []T) {
	n := len(s)
	for n > 1 {
		swapped := false
		for i := 1; i < n; i++ {
			if s[i-1] > s[i] {
				s[i-1], s[i] = s[i], s[i-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
		n--
	}
}

// ExchangeSort sorts s in place and returns it together with the elapsed time.
func ExchangeSort[T constraints.Ordered](s []T, clock Clock) Timed[T] {
	return Measure(clock, func() []T {
		Exchange(s)
		return s
	})
}
