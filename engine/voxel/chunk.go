package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type ChunkState int

const (
	ChunkEmpty ChunkState = iota
	ChunkPopulated
	ChunkMeshed
)

func (s ChunkState) String() string {
	switch s {
	case ChunkEmpty:
		return "Empty"
	case ChunkPopulated:
		return "Populated"
	case ChunkMeshed:
		return "Meshed"
	}
	return "Unknown"
}

// Chunk is a cube of ChunkSize³ voxels. Reads outside the cube see Air, so
// faces on the chunk border are always drawn.
type Chunk struct {
	data        []Voxel
	position    Int3
	dims        Dimensions
	state       ChunkState
	groundCount int
	meshBuffer  *MeshBuffer
}

func NewChunk(position Int3, dims Dimensions) *Chunk {
	return &Chunk{
		data:     make([]Voxel, dims.ChunkVolume()),
		position: position,
		dims:     dims,
	}
}

func (c *Chunk) blockIndex(x, y, z int32) int32 {
	size := c.dims.ChunkSize
	return x + z*size + y*size*size
}

func (c *Chunk) Contains(x, y, z int32) bool {
	size := c.dims.ChunkSize
	return x >= 0 && x < size && y >= 0 && y < size && z >= 0 && z < size
}

func (c *Chunk) Voxel(x, y, z int32) Voxel {
	if !c.Contains(x, y, z) {
		return Air
	}
	return c.data[c.blockIndex(x, y, z)]
}

func (c *Chunk) IsFree(x, y, z int32) bool {
	return c.Voxel(x, y, z).IsAir()
}

// SetVoxel writes a local voxel. Writing outside the chunk or after the mesh
// was generated panics.
func (c *Chunk) SetVoxel(x, y, z int32, v Voxel) {
	if c.state == ChunkMeshed {
		panic(fmt.Sprintf("voxel write at %d,%d,%d in meshed chunk %v", x, y, z, c.position))
	}
	if !c.Contains(x, y, z) {
		panic(fmt.Sprintf("voxel %d,%d,%d outside chunk of size %d", x, y, z, c.dims.ChunkSize))
	}
	i := c.blockIndex(x, y, z)
	old := c.data[i]
	if old == v {
		return
	}
	c.data[i] = v
	if v == Ground {
		c.groundCount++
		c.state = ChunkPopulated
	} else if old == Ground {
		c.groundCount--
		if c.groundCount == 0 {
			c.state = ChunkEmpty
		}
	}
}

func (c *Chunk) SetGround(x, y, z int32) {
	c.SetVoxel(x, y, z, Ground)
}

// Generate extracts and caches the mesh. Later calls return the cached mesh.
func (c *Chunk) Generate() *MeshBuffer {
	if c.state == ChunkMeshed {
		return c.meshBuffer
	}
	c.meshBuffer = ExtractMesh(c)
	c.state = ChunkMeshed
	return c.meshBuffer
}

// Mesh panics if Generate was not called yet.
func (c *Chunk) Mesh() *MeshBuffer {
	if c.meshBuffer == nil {
		panic(fmt.Sprintf("mesh of chunk %v requested before generation", c.position))
	}
	return c.meshBuffer
}

func (c *Chunk) HasMesh() bool {
	return c.meshBuffer != nil
}

func (c *Chunk) State() ChunkState {
	return c.state
}

func (c *Chunk) GroundCount() int {
	return c.groundCount
}

func (c *Chunk) Position() Int3 {
	return c.position
}

func (c *Chunk) Size() int32 {
	return c.dims.ChunkSize
}

// Origin is the world position of the chunk's local voxel (0,0,0).
func (c *Chunk) Origin() mgl32.Vec3 {
	return c.dims.ChunkOrigin(c.position)
}

// Color is a debug tint derived from the direction of the chunk origin. The
// chunk at the world origin is white.
func (c *Chunk) Color() mgl32.Vec3 {
	origin := c.Origin()
	if origin.Len() == 0 {
		return mgl32.Vec3{1, 1, 1}
	}
	n := origin.Normalize()
	return mgl32.Vec3{mgl32.Abs(n.X()), mgl32.Abs(n.Y()), mgl32.Abs(n.Z())}
}
