// Package vec holds the inner loops of the majority-vote scorer.
package vec

// AddUint8 is
//
//	for i, v := range s {
//		dst[i] += int32(v)
//	}
func AddUint8(dst []int32, s []uint8) {
	for i, v := range s {
		dst[i] += int32(v)
	}
}

// Zero is
//
//	for i := range x {
//		x[i] = 0
//	}
func Zero(x []int32) {
	for i := range x {
		x[i] = 0 // memclr
	}
}

// CountAbove is
//
//	var n int
//	for _, v := range x {
//		if float64(v) > threshold {
//			n++
//		}
//	}
//	return n
func CountAbove(x []int32, threshold float64) int {
	var n int
	for _, v := range x {
		if float64(v) > threshold {
			n++
		}
	}
	return n
}
