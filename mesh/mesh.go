// SPDX-License-Identifier: MIT

// Package mesh implements the marching-cubes isosurface extractor: it
// walks a volume's active voxels, classifies each unit cube against an
// iso-level, and emits an interpolated triangle mesh.
package mesh

import (
	"github.com/juliendecharentenay/yanvox/vec"
)

// Mesh is the extractor's output: an ordered vertex array and an ordered
// triangle array, each triangle a triple of indices into Vertices.
// De-duplication across adjacent cubes is not performed (spec.md §4.4);
// the same world position may appear more than once.
type Mesh struct {
	Vertices  []vec.FVec3
	Triangles [][3]uint32
}

func (m *Mesh) addTriangle(a, b, c vec.FVec3) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, a, b, c)
	m.Triangles = append(m.Triangles, [3]uint32{base, base + 1, base + 2})
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Triangles) }

// BoundingBox returns the world-space axis-aligned box spanning every
// vertex. Supplements spec.md §4.4 (present in
// original_source/rust/yanvox/src/mesh_generation/mesh.rs, dropped in
// distillation).
func (m *Mesh) BoundingBox() vec.FBounds3 {
	b := vec.EmptyFBounds3()
	for _, v := range m.Vertices {
		b = b.Expand(v)
	}
	return b
}
