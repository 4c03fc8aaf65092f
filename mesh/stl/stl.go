// SPDX-License-Identifier: MIT

// Package stl writes a mesh.Mesh to the ASCII and binary STL formats
// described in spec.md §6, including the exact binary header and
// little-endian field layout.
package stl

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/juliendecharentenay/yanvox/mesh"
	"github.com/juliendecharentenay/yanvox/vec"
)

const solidName = "yanvox_mesh"
const binaryHeaderLabel = "yanvox_mesh_binary_export"
const binaryHeaderSize = 80

// triangleNormal returns the normalized cross product of (v1-v0)x(v2-v0),
// the right-hand-rule facet normal spec.md §6 requires.
func triangleNormal(v0, v1, v2 vec.FVec3) vec.FVec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

// WriteASCII writes m to w in the ASCII STL format.
func WriteASCII(w io.Writer, m *mesh.Mesh) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", solidName); err != nil {
		return err
	}
	for _, tri := range m.Triangles {
		v0, v1, v2 := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		n := triangleNormal(v0, v1, v2)
		if _, err := fmt.Fprintf(w, "facet normal %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "outer loop\n"); err != nil {
			return err
		}
		for _, v := range [3]vec.FVec3{v0, v1, v2} {
			if _, err := fmt.Fprintf(w, "vertex %g %g %g\n", v.X, v.Y, v.Z); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "endloop\nendfacet\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "endsolid %s\n", solidName)
	return err
}

// WriteBinary writes m to w in the binary STL format: an 80-byte header,
// a little-endian uint32 triangle count, then per triangle a 3xf32
// normal, 3x3xf32 vertex block, and a zero uint16 attribute, all
// little-endian.
func WriteBinary(w io.Writer, m *mesh.Mesh) error {
	var header [binaryHeaderSize]byte
	copy(header[:], binaryHeaderLabel)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return err
	}

	for _, tri := range m.Triangles {
		v0, v1, v2 := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		n := triangleNormal(v0, v1, v2)
		for _, f := range []float32{n.X, n.Y, n.Z} {
			if err := binary.Write(w, binary.LittleEndian, f); err != nil {
				return err
			}
		}
		for _, v := range [3]vec.FVec3{v0, v1, v2} {
			for _, f := range []float32{v.X, v.Y, v.Z} {
				if err := binary.Write(w, binary.LittleEndian, f); err != nil {
					return err
				}
			}
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return nil
}
