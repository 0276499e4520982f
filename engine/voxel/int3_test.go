package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivMod(t *testing.T) {
	cases := []struct {
		a, b, div, mod int32
	}{
		{0, 64, 0, 0},
		{63, 64, 0, 63},
		{64, 64, 1, 0},
		{-1, 64, -1, 63},
		{-64, 64, -1, 0},
		{-65, 64, -2, 63},
		{7, 4, 1, 3},
		{-7, 4, -2, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.div, floorDiv(c.a, c.b), "floorDiv(%d, %d)", c.a, c.b)
		assert.Equal(t, c.mod, floorMod(c.a, c.b), "floorMod(%d, %d)", c.a, c.b)
		assert.Equal(t, c.a, floorDiv(c.a, c.b)*c.b+floorMod(c.a, c.b))
	}
}

func TestInt3Ops(t *testing.T) {
	a := Int3{X: 1, Y: -2, Z: 3}
	assert.Equal(t, Int3{X: 2, Y: -4, Z: 6}, a.Mul(2))
	assert.Equal(t, Int3{X: 0, Y: 0, Z: 0}, a.Sub(a))
	assert.Equal(t, Int3{X: 2, Y: -4, Z: 6}, a.Add(a))
	assert.Equal(t, Int3{X: -2, Y: -1, Z: 0}, Int3{X: -5, Y: -1, Z: 3}.FloorDiv(4))
	assert.Equal(t, Int3{X: 3, Y: 3, Z: 3}, Int3{X: -5, Y: -1, Z: 3}.FloorMod(4))
	assert.Equal(t, float32(-2), a.ToVec3().Y())
}

func TestInt3Less(t *testing.T) {
	assert.True(t, Int3{X: 5, Y: 0, Z: 0}.Less(Int3{X: 0, Y: 1, Z: 0}))
	assert.True(t, Int3{X: 5, Y: 0, Z: 0}.Less(Int3{X: 0, Y: 0, Z: 1}))
	assert.True(t, Int3{X: 0}.Less(Int3{X: 1}))
	assert.False(t, Int3{X: 1}.Less(Int3{X: 1}))
}
