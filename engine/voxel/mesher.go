package voxel

// ExtractMesh emits one quad for every Ground voxel face whose neighbor is
// free. Positions are chunk local and scaled by the voxel size.
func ExtractMesh(c *Chunk) *MeshBuffer {
	mesh := NewMeshBuffer()
	if c.groundCount == 0 {
		return mesh
	}
	size := c.dims.ChunkSize
	scale := c.dims.VoxelSize
	for y := int32(0); y < size; y++ {
		for z := int32(0); z < size; z++ {
			for x := int32(0); x < size; x++ {
				if c.data[c.blockIndex(x, y, z)] != Ground {
					continue
				}
				pos := Int3{X: x, Y: y, Z: z}
				base := pos.ToVec3()
				for _, face := range meshFaceOrder {
					n := pos.Add(face.Offset())
					if !c.IsFree(n.X, n.Y, n.Z) {
						continue
					}
					corners := face.Corners()
					mesh.AppendQuad(
						base.Add(corners[0]).Mul(scale),
						base.Add(corners[1]).Mul(scale),
						base.Add(corners[2]).Mul(scale),
						base.Add(corners[3]).Mul(scale),
						face,
					)
				}
			}
		}
	}
	return mesh
}
