package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tilemesh/engine/util"
	"github.com/memmaker/tilemesh/engine/voxel"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLTFExporter collects chunk meshes into one glTF document. Every chunk
// becomes a node translated to its world origin.
type GLTFExporter struct {
	doc           *gltf.Document
	chunkCount    int
	triangleCount int
}

func NewGLTFExporter() *GLTFExporter {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "tilemesh"
	return &GLTFExporter{doc: doc}
}

func (e *GLTFExporter) AddChunkMesh(coord voxel.Int3, origin mgl32.Vec3, color mgl32.Vec3, mesh *voxel.MeshBuffer) error {
	if mesh == nil || mesh.IsEmpty() {
		return nil
	}
	positions := mesh.Vec3Positions()
	normals := mesh.Vec3Normals()
	uvs := mesh.Vec2TexCoords()
	if len(positions) != len(normals) || len(positions) != len(uvs) {
		return errors.Errorf("chunk %v has mismatched buffers: %d positions, %d normals, %d uvs", coord, len(positions), len(normals), len(uvs))
	}

	name := fmt.Sprintf("chunk_%d_%d_%d", coord.X, coord.Y, coord.Z)
	doc := e.doc

	materialIndex := uint32(len(doc.Materials))
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{color.X(), color.Y(), color.Z(), 1},
		},
	})

	primitive := &gltf.Primitive{
		Mode: gltf.PrimitiveTriangles,
		Attributes: map[string]uint32{
			gltf.POSITION:   modeler.WritePosition(doc, positions),
			gltf.NORMAL:     modeler.WriteNormal(doc, normals),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
		},
		Material: gltf.Index(materialIndex),
	}

	meshIndex := uint32(len(doc.Meshes))
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{primitive},
	})

	nodeIndex := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:        name,
		Mesh:        gltf.Index(meshIndex),
		Translation: [3]float32{origin.X(), origin.Y(), origin.Z()},
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, nodeIndex)

	e.chunkCount++
	e.triangleCount += mesh.TriangleCount()
	util.LogExportDebug(fmt.Sprintf("[GLTF] Added %s with %d triangles", name, mesh.TriangleCount()))
	return nil
}

func (e *GLTFExporter) Document() *gltf.Document {
	return e.doc
}

func (e *GLTFExporter) ChunkCount() int {
	return e.chunkCount
}

func (e *GLTFExporter) TriangleCount() int {
	return e.triangleCount
}

// Encode writes the document as GLB when binary is set, otherwise as glTF
// JSON with the buffers embedded as data URIs.
func (e *GLTFExporter) Encode(w io.Writer, binary bool) error {
	if !binary {
		for _, buffer := range e.doc.Buffers {
			buffer.EmbeddedResource()
		}
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	if err := enc.Encode(e.doc); err != nil {
		return errors.Wrap(err, "encoding gltf")
	}
	return nil
}

// WriteFile picks the format from the extension (.glb or .gltf).
func (e *GLTFExporter) WriteFile(filename string) error {
	var binary bool
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".glb":
		binary = true
	case ".gltf":
		binary = false
	default:
		return errors.Errorf("unsupported export format %q, use .glb or .gltf", filepath.Ext(filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	writer := bufio.NewWriter(file)
	if err = e.Encode(writer, binary); err == nil {
		err = writer.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("[GLTF] Wrote %d chunks with %d triangles to %s", e.chunkCount, e.triangleCount, filename))
	return nil
}

// WriteWorld exports every meshed chunk of the world to filename.
func WriteWorld(world *voxel.World, filename string) (*GLTFExporter, error) {
	exporter := NewGLTFExporter()
	if err := world.Emit(exporter); err != nil {
		return nil, errors.Wrap(err, "collecting chunk meshes")
	}
	if err := exporter.WriteFile(filename); err != nil {
		return nil, err
	}
	return exporter, nil
}
