package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tilemesh/engine/tile"
	"github.com/memmaker/tilemesh/engine/voxel"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallWorld(t *testing.T, expansion int32) *voxel.World {
	t.Helper()
	area, err := tile.ParseLevels([]string{"#"})
	require.NoError(t, err)
	world, err := voxel.NewWorldFromArea(area, voxel.Dimensions{ChunkSize: 4, VoxelSize: 0.5, Expansion: expansion})
	require.NoError(t, err)
	return world
}

func TestExporterBuildsOneNodePerChunk(t *testing.T) {
	world := smallWorld(t, 6)
	exporter := NewGLTFExporter()
	require.NoError(t, world.Emit(exporter))

	doc := exporter.Document()
	assert.Equal(t, 8, exporter.ChunkCount())
	assert.Len(t, doc.Nodes, 8)
	assert.Len(t, doc.Meshes, 8)
	assert.Len(t, doc.Materials, 8)
	assert.Len(t, doc.Scenes[0].Nodes, 8)
	assert.Equal(t, world.TriangleCount(), exporter.TriangleCount())

	last := doc.Nodes[len(doc.Nodes)-1]
	assert.Equal(t, "chunk_1_1_1", last.Name)
	assert.Equal(t, [3]float32{2, 2, 2}, last.Translation)
}

func TestExporterSkipsEmptyMeshes(t *testing.T) {
	exporter := NewGLTFExporter()
	require.NoError(t, exporter.AddChunkMesh(voxel.Int3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, voxel.NewMeshBuffer()))
	require.NoError(t, exporter.AddChunkMesh(voxel.Int3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, nil))
	assert.Zero(t, exporter.ChunkCount())
	assert.Empty(t, exporter.Document().Meshes)
}

func TestBinaryRoundTrip(t *testing.T) {
	world := smallWorld(t, 2)
	exporter := NewGLTFExporter()
	require.NoError(t, world.Emit(exporter))

	var buf bytes.Buffer
	require.NoError(t, exporter.Encode(&buf, true))

	doc := new(gltf.Document)
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(doc))
	require.Len(t, doc.Meshes, 1)

	primitive := doc.Meshes[0].Primitives[0]
	assert.Equal(t, gltf.PrimitiveTriangles, primitive.Mode)

	positions, err := modeler.ReadPosition(doc, doc.Accessors[primitive.Attributes[gltf.POSITION]], nil)
	require.NoError(t, err)
	normals, err := modeler.ReadNormal(doc, doc.Accessors[primitive.Attributes[gltf.NORMAL]], nil)
	require.NoError(t, err)
	uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[primitive.Attributes[gltf.TEXCOORD_0]], nil)
	require.NoError(t, err)

	assert.Len(t, positions, 144)
	assert.Len(t, normals, 144)
	assert.Len(t, uvs, 144)

	chunk, ok := world.GetChunk(voxel.Int3{})
	require.True(t, ok)
	assert.Equal(t, chunk.Mesh().Vec3Positions(), positions)

	material := doc.Materials[*primitive.Material]
	assert.Equal(t, [4]float32{1, 1, 1, 1}, *material.PBRMetallicRoughness.BaseColorFactor)
}

func TestWriteWorldFormats(t *testing.T) {
	world := smallWorld(t, 2)
	dir := t.TempDir()

	for _, name := range []string{"world.glb", "world.gltf"} {
		path := filepath.Join(dir, name)
		exporter, err := WriteWorld(world, path)
		require.NoError(t, err, name)
		assert.Equal(t, 1, exporter.ChunkCount())

		doc, err := gltf.Open(path)
		require.NoError(t, err, name)
		assert.Len(t, doc.Nodes, 1, name)
	}

	_, err := WriteWorld(world, filepath.Join(dir, "world.obj"))
	assert.Error(t, err)
}
