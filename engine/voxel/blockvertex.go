package voxel

import "github.com/go-gl/mathgl/mgl32"

type FaceType int32

const (
	XP FaceType = iota
	XN
	YP
	YN
	ZP
	ZN
)

// meshFaceOrder is the order in which faces of a voxel are tested.
var meshFaceOrder = [6]FaceType{YP, YN, XN, XP, ZP, ZN}

var faceNames = [6]string{"XP", "XN", "YP", "YN", "ZP", "ZN"}

var faceNormals = [6]mgl32.Vec3{
	XP: {1, 0, 0},
	XN: {-1, 0, 0},
	YP: {0, 1, 0},
	YN: {0, -1, 0},
	ZP: {0, 0, 1},
	ZN: {0, 0, -1},
}

var faceOffsets = [6]Int3{
	XP: {X: 1},
	XN: {X: -1},
	YP: {Y: 1},
	YN: {Y: -1},
	ZP: {Z: 1},
	ZN: {Z: -1},
}

// faceCorners holds the unit cube corners of every face, counter-clockwise
// when looking at the face from outside.
var faceCorners = [6][4]mgl32.Vec3{
	XP: {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	XN: {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	YP: {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	YN: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	ZP: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	ZN: {{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
}

// cornerUVs in the order of faceCorners.
var cornerUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func (f FaceType) Normal() mgl32.Vec3 {
	return faceNormals[f]
}

// Offset points to the neighbor sharing this face.
func (f FaceType) Offset() Int3 {
	return faceOffsets[f]
}

func (f FaceType) Corners() [4]mgl32.Vec3 {
	return faceCorners[f]
}

func (f FaceType) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "Unknown"
	}
	return faceNames[f]
}
