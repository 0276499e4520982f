package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	DEFAULT_CHUNK_SIZE int32   = 64
	DEFAULT_VOXEL_SIZE float32 = 0.1
	DEFAULT_EXPANSION  int32   = 10
)

// Dimensions ties the voxel grid to world space. ChunkSize is the edge length
// of a chunk in voxels, VoxelSize the edge length of a voxel in world units and
// Expansion the number of voxels per tile along each axis.
type Dimensions struct {
	ChunkSize int32   `yaml:"chunk_size"`
	VoxelSize float32 `yaml:"voxel_size"`
	Expansion int32   `yaml:"expansion"`
}

func DefaultDimensions() Dimensions {
	return Dimensions{
		ChunkSize: DEFAULT_CHUNK_SIZE,
		VoxelSize: DEFAULT_VOXEL_SIZE,
		Expansion: DEFAULT_EXPANSION,
	}
}

func (d Dimensions) Validate() error {
	if d.ChunkSize <= 0 {
		return errors.Errorf("chunk size must be positive, got %d", d.ChunkSize)
	}
	if d.ChunkSize > 1024 {
		return errors.Errorf("chunk size %d is too large", d.ChunkSize)
	}
	if !(d.VoxelSize > 0) {
		return errors.Errorf("voxel size must be positive, got %v", d.VoxelSize)
	}
	if d.Expansion <= 0 {
		return errors.Errorf("expansion must be positive, got %d", d.Expansion)
	}
	return nil
}

func (d Dimensions) ChunkVolume() int {
	size := int(d.ChunkSize)
	return size * size * size
}

// ChunkOrigin is the world space position of voxel (0,0,0) of the chunk.
func (d Dimensions) ChunkOrigin(coord Int3) mgl32.Vec3 {
	return coord.Mul(d.ChunkSize).ToVec3().Mul(d.VoxelSize)
}
