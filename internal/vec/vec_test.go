package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddUint8(t *testing.T) {
	dst := []int32{0, 1, 2}
	AddUint8(dst, []uint8{1, 0, 1})
	AddUint8(dst, []uint8{1, 1, 1})
	assert.Equal(t, []int32{2, 2, 4}, dst)

	Zero(dst)
	assert.Equal(t, []int32{0, 0, 0}, dst)
}

func TestCountAbove(t *testing.T) {
	x := []int32{0, 1, 2, 3}
	assert.Equal(t, 2, CountAbove(x, 1.5))
	assert.Equal(t, 2, CountAbove(x, 1), "threshold is strict")
	assert.Equal(t, 4, CountAbove(x, -0.5))
	assert.Equal(t, 0, CountAbove(nil, 0))
}
