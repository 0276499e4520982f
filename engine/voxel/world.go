package voxel

import (
	"context"
	"fmt"
	"sort"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tilemesh/engine/util"
	"github.com/pkg/errors"
)

// TileSource is a 3D tile grid. Size returns width (x), height (y) and
// depth (z) in tiles.
type TileSource interface {
	Size() (int, int, int)
	IsWall(x, y, z int) bool
}

// MeshSink receives the mesh of every chunk together with its world origin.
type MeshSink interface {
	AddChunkMesh(coord Int3, origin mgl32.Vec3, color mgl32.Vec3, mesh *MeshBuffer) error
}

// World is a sparse set of chunks. A missing chunk is all Air. Chunks are
// only created by SetGround and voxels are never cleared through the world, so
// every stored chunk holds Ground.
type World struct {
	chunks map[Int3]*Chunk
	dims   Dimensions
}

func NewWorld(dims Dimensions) (*World, error) {
	if err := dims.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid world dimensions")
	}
	return &World{
		chunks: make(map[Int3]*Chunk),
		dims:   dims,
	}, nil
}

// NewWorldFromArea rasterizes every wall of the source and meshes all
// resulting chunks.
func NewWorldFromArea(src TileSource, dims Dimensions) (*World, error) {
	w, err := NewWorld(dims)
	if err != nil {
		return nil, err
	}
	walls := w.Rasterize(src)
	util.LogVoxelDebug(fmt.Sprintf("[World] Rasterized %d walls into %d chunks", walls, len(w.chunks)))
	w.GenerateAllMeshes()
	return w, nil
}

// Rasterize expands every wall tile into an Expansion³ block of Ground
// voxels and returns the number of walls.
func (w *World) Rasterize(src TileSource) int {
	width, height, depth := src.Size()
	e := w.dims.Expansion
	walls := 0
	for y := 0; y < height; y++ {
		for z := 0; z < depth; z++ {
			for x := 0; x < width; x++ {
				if !src.IsWall(x, y, z) {
					continue
				}
				walls++
				base := Int3{X: int32(x), Y: int32(y), Z: int32(z)}.Mul(e)
				for j := int32(0); j < e; j++ {
					for k := int32(0); k < e; k++ {
						for i := int32(0); i < e; i++ {
							w.SetGround(base.Add(Int3{X: i, Y: j, Z: k}))
						}
					}
				}
			}
		}
	}
	return walls
}

// SetGround marks a global voxel as Ground, creating its chunk on demand.
func (w *World) SetGround(global Int3) {
	coord := global.FloorDiv(w.dims.ChunkSize)
	local := global.FloorMod(w.dims.ChunkSize)
	chunk, ok := w.chunks[coord]
	if !ok {
		chunk = NewChunk(coord, w.dims)
		w.chunks[coord] = chunk
	}
	chunk.SetGround(local.X, local.Y, local.Z)
}

func (w *World) GetChunk(coord Int3) (*Chunk, bool) {
	chunk, ok := w.chunks[coord]
	return chunk, ok
}

// ChunkCoord returns the chunk holding a global voxel.
func (w *World) ChunkCoord(global Int3) Int3 {
	return global.FloorDiv(w.dims.ChunkSize)
}

func (w *World) VoxelAt(global Int3) Voxel {
	chunk, ok := w.chunks[global.FloorDiv(w.dims.ChunkSize)]
	if !ok {
		return Air
	}
	local := global.FloorMod(w.dims.ChunkSize)
	return chunk.Voxel(local.X, local.Y, local.Z)
}

func (w *World) Dimensions() Dimensions {
	return w.dims
}

func (w *World) ChunkOrigin(coord Int3) mgl32.Vec3 {
	return w.dims.ChunkOrigin(coord)
}

// Chunks returns all chunks ordered by coordinate.
func (w *World) Chunks() []*Chunk {
	result := make([]*Chunk, 0, len(w.chunks))
	for _, chunk := range w.chunks {
		result = append(result, chunk)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].position.Less(result[j].position)
	})
	return result
}

func (w *World) ChunkCount() int {
	return len(w.chunks)
}

func (w *World) GroundCount() int {
	total := 0
	for _, chunk := range w.chunks {
		total += chunk.GroundCount()
	}
	return total
}

// TriangleCount sums the triangles of all meshed chunks.
func (w *World) TriangleCount() int {
	total := 0
	for _, chunk := range w.chunks {
		if chunk.HasMesh() {
			total += chunk.Mesh().TriangleCount()
		}
	}
	return total
}

func (w *World) GenerateAllMeshes() {
	for _, chunk := range w.Chunks() {
		chunk.Generate()
	}
	w.logSummary()
}

// GenerateAllMeshesParallel meshes every chunk on a pool of at most workers
// goroutines. It returns once all submitted work has finished. A cancelled
// context stops meshing of chunks not yet started.
func (w *World) GenerateAllMeshesParallel(ctx context.Context, workers int) error {
	if workers < 1 {
		workers = 1
	}
	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, chunk := range w.Chunks() {
		chunk := chunk
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunk.Generate()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return errors.Wrap(err, "meshing chunks")
	}
	w.logSummary()
	return nil
}

func (w *World) logSummary() {
	util.LogVoxelInfo(fmt.Sprintf("[World] generated %d chunks", len(w.chunks)))
	util.LogVoxelDebug(fmt.Sprintf("[World] Total triangles: %d", w.TriangleCount()))
}

// Emit hands every meshed chunk to the sink in coordinate order.
func (w *World) Emit(sink MeshSink) error {
	for _, chunk := range w.Chunks() {
		if !chunk.HasMesh() {
			return errors.Errorf("chunk %v has no mesh", chunk.position)
		}
		mesh := chunk.Mesh()
		if mesh.IsEmpty() {
			continue
		}
		if err := sink.AddChunkMesh(chunk.position, chunk.Origin(), chunk.Color(), mesh); err != nil {
			return errors.Wrapf(err, "emitting chunk %v", chunk.position)
		}
	}
	return nil
}
