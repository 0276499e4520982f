package voxel

import "github.com/go-gl/mathgl/mgl32"

// MeshBuffer holds non-indexed triangles as flat float buffers. Positions and
// normals hold three floats per vertex, texcoords two.
type MeshBuffer struct {
	positions   []float32
	normals     []float32
	texCoords   []float32
	vertexCount int
}

func NewMeshBuffer() *MeshBuffer {
	return &MeshBuffer{}
}

// AppendQuad emits the quad c0 c1 c2 c3 as the triangles (c0,c1,c2) and
// (c0,c2,c3). Corners must be counter-clockwise seen from the face's side.
func (m *MeshBuffer) AppendQuad(c0, c1, c2, c3 mgl32.Vec3, face FaceType) {
	corners := [4]mgl32.Vec3{c0, c1, c2, c3}
	normal := face.Normal()
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		m.addVertex(corners[i], normal, cornerUVs[i])
	}
	m.vertexCount += 6
}

func (m *MeshBuffer) addVertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	m.positions = append(m.positions, pos.X(), pos.Y(), pos.Z())
	m.normals = append(m.normals, normal.X(), normal.Y(), normal.Z())
	m.texCoords = append(m.texCoords, uv.X(), uv.Y())
}

func (m *MeshBuffer) Positions() []float32 {
	return m.positions
}

func (m *MeshBuffer) Normals() []float32 {
	return m.normals
}

func (m *MeshBuffer) TexCoords() []float32 {
	return m.texCoords
}

func (m *MeshBuffer) VertexCount() int {
	return m.vertexCount
}

func (m *MeshBuffer) TriangleCount() int {
	return m.vertexCount / 3
}

func (m *MeshBuffer) IsEmpty() bool {
	return m.vertexCount == 0
}

// Vertex returns position and normal of vertex i.
func (m *MeshBuffer) Vertex(i int) (mgl32.Vec3, mgl32.Vec3) {
	p := m.positions[i*3 : i*3+3]
	n := m.normals[i*3 : i*3+3]
	return mgl32.Vec3{p[0], p[1], p[2]}, mgl32.Vec3{n[0], n[1], n[2]}
}

// Vec3Positions converts the flat position buffer for encoders that want
// vectors.
func (m *MeshBuffer) Vec3Positions() [][3]float32 {
	return toVec3s(m.positions)
}

func (m *MeshBuffer) Vec3Normals() [][3]float32 {
	return toVec3s(m.normals)
}

func (m *MeshBuffer) Vec2TexCoords() [][2]float32 {
	result := make([][2]float32, len(m.texCoords)/2)
	for i := range result {
		result[i] = [2]float32{m.texCoords[i*2], m.texCoords[i*2+1]}
	}
	return result
}

func (m *MeshBuffer) Reset() {
	m.positions = m.positions[:0]
	m.normals = m.normals[:0]
	m.texCoords = m.texCoords[:0]
	m.vertexCount = 0
}

func (m *MeshBuffer) MergeBuffer(other *MeshBuffer) {
	if other == nil {
		return
	}
	m.positions = append(m.positions, other.positions...)
	m.normals = append(m.normals, other.normals...)
	m.texCoords = append(m.texCoords, other.texCoords...)
	m.vertexCount += other.vertexCount
}

func toVec3s(flat []float32) [][3]float32 {
	result := make([][3]float32, len(flat)/3)
	for i := range result {
		result[i] = [3]float32{flat[i*3], flat[i*3+1], flat[i*3+2]}
	}
	return result
}
