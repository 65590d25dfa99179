package jury

// Experiments run thousands of batches of the same shape, so their
// buffers are grown in place and resliced instead of reallocated.

func extendFloat64(v []float64, n int) []float64 {
	if n > cap(v) {
		return append(v[:cap(v)], make([]float64, n-cap(v))...)
	}

	return v[:n]
}

func extendUint8(v []uint8, n int) []uint8 {
	if n > cap(v) {
		return append(v[:cap(v)], make([]uint8, n-cap(v))...)
	}

	return v[:n]
}

func extendInt32(v []int32, n int) []int32 {
	if n > cap(v) {
		return append(v[:cap(v)], make([]int32, n-cap(v))...)
	}

	return v[:n]
}
