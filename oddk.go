package jury

import (
	"math"
)

// SmallestOddLarger rounds m up to an odd jury size.
// It computes ceil(m) and bumps it to the next odd number if it is even.
//
// When m is already an odd integer the result is m itself, not m+2.
// Use StrictOddLarger if the result must exceed m.
func SmallestOddLarger(m float64) int {
	c := int(math.Ceil(m))
	if c%2 == 0 {
		return c + 1
	}

	return c
}

// StrictOddLarger returns the smallest odd integer strictly greater than m.
func StrictOddLarger(m float64) int {
	c := SmallestOddLarger(m)
	if float64(c) <= m {
		return c + 2
	}

	return c
}
