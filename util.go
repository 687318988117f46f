package turtle

import "math/rand/v2"

// RandomInt returns a pseudo-random integer in [lo, hi], both inclusive.
// Swapped bounds are accepted. Any int range is valid, including
// [math.MinInt, math.MaxInt].
func RandomInt(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint64(uint(hi-lo)) + 1
	if span == 0 {
		// The full 64-bit int range.
		return int(rand.Uint64())
	}
	return lo + int(rand.Uint64N(span))
}

// Repeat calls fn exactly n times with i = 0..n-1, in order. A negative n
// means zero calls. It stops at and returns the first error.
func Repeat(n int, fn func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}
