package voxel

import "github.com/go-gl/mathgl/mgl32"

type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(other Int3) Int3 {
	return Int3{i.X - other.X, i.Y - other.Y, i.Z - other.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

// FloorDiv divides every component rounding towards negative infinity.
func (i Int3) FloorDiv(d int32) Int3 {
	return Int3{floorDiv(i.X, d), floorDiv(i.Y, d), floorDiv(i.Z, d)}
}

// FloorMod is the non-negative remainder matching FloorDiv.
func (i Int3) FloorMod(d int32) Int3 {
	return Int3{floorMod(i.X, d), floorMod(i.Y, d), floorMod(i.Z, d)}
}

// Less orders by Y, then Z, then X.
func (i Int3) Less(other Int3) bool {
	if i.Y != other.Y {
		return i.Y < other.Y
	}
	if i.Z != other.Z {
		return i.Z < other.Z
	}
	return i.X < other.X
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int32) int32 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
