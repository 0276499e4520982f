package voxel

type Voxel byte

const (
	Air Voxel = iota
	Ground
)

func (v Voxel) IsAir() bool {
	return v == Air
}

func (v Voxel) String() string {
	if v == Ground {
		return "Ground"
	}
	return "Air"
}
