// SPDX-License-Identifier: MIT

// Package voxel implements the sparse, hierarchical voxel tree: the
// Leaf/Internal/Root node kinds, their dense child layouts, and the
// polymorphic Noder abstraction that lets the volume facade swap tree
// shapes at construction.
//
// Payloads are any comparable type implementing Voxel. The background
// value for a tree is threaded explicitly through the node constructors
// (Go has no associated static functions on interfaces), rather than
// being recovered from the type the way the source engine's
// `VoxelData::background()` static method does.
package voxel

import (
	"errors"
	"iter"

	"github.com/juliendecharentenay/yanvox/vec"
)

// Voxel is the payload contract every stored value must satisfy:
// comparable (for equality and background elision) and able to report
// its own activity.
type Voxel interface {
	comparable
	IsActive() bool
}

// SignedDistance is the additional capability the marching-cubes mesher
// requires: a scalar signed distance to the isosurface.
type SignedDistance interface {
	Voxel
	SignedDistance() float32
}

// ErrActiveBackground is returned by NewRoot when the supplied background
// value reports itself active, violating the core invariant that the
// background is never active.
var ErrActiveBackground = errors.New("voxel: background value must not be active")

// Noder is the uniform interface every node kind (leaf, internal, root)
// implements, mirroring the node/fastNode/noder family the tree shapes are
// generalized from. It is exported so a volume facade outside this
// package can wire together whichever shape of root/internal/leaf chain a
// configuration calls for without this package needing to know about
// shapes at all.
type Noder[V Voxel] interface {
	Level() uint32
	CumLog2() uint32
	Bounds() vec.IBounds3
	IsActive(c vec.IVec3) bool
	GetVoxel(c vec.IVec3) V
	SetVoxel(c vec.IVec3, v V) (old V, existed bool)
	RemoveVoxel(c vec.IVec3) (old V, existed bool)
	ActiveCount() int
	TotalCount() int
	IterActive() iter.Seq2[vec.IVec3, V]
	IterAll() iter.Seq2[vec.IVec3, V]
}

// ChildFactory manufactures a fresh child node rooted at key, at the
// given tree level. It is captured as a closure by the parent that owns
// it, so a single Go node type can serve every tree shape in SPEC_FULL.md
// §7 rather than needing one concrete type per shape; the volume facade's
// shape table builds these closures.
type ChildFactory[V Voxel] func(key vec.IVec3, level uint32) Noder[V]

// voidVoxel is a minimal Voxel used only to anchor compile-time
// `Noder[V]` interface satisfaction checks in this package's source
// files, so a missing method is caught without needing a real payload.
type voidVoxel struct{ active bool }

func (v voidVoxel) IsActive() bool { return v.active }

// snapKey masks c down to the origin of the cum-log2-sized slot that
// contains it, using bitwise AND against the bitwise complement of
// (size-1). This is invariant 3 in spec.md §3: it must work identically
// for negative coordinates.
func snapKey(c vec.IVec3, cumLog2 uint32) vec.IVec3 {
	size := int32(1) << cumLog2
	mask := ^(size - 1)
	return vec.IVec3{X: c.X & mask, Y: c.Y & mask, Z: c.Z & mask}
}
