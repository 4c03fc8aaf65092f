// SPDX-License-Identifier: MIT

package voxel

import (
	"iter"

	"github.com/juliendecharentenay/yanvox/vec"
)

// RootNode is the sparse, hash-keyed top of the tree. The tree-shape
// selection described in spec.md §3 (Default / Hashx2x1 / Hashx5x4) is
// entirely a matter of which newChild factory is installed here at
// construction — every shape shares this one Go type, rather than needing
// a distinct root type per shape the way the source engine's
// `RootNode<T, N: ChildNodeTrait<T>>` does with its generic child
// parameter N.
type RootNode[V Voxel] struct {
	background   V
	childCumLog2 uint32
	newChild     ChildFactory[V]

	children map[vec.IVec3]Noder[V]
}

// NewRoot constructs a root whose direct children are manufactured by
// newChild, which must produce nodes whose own CumLog2() equals
// childCumLog2 — the volume facade's shape table is responsible for this
// contract, not the root itself.
func NewRoot[V Voxel](background V, childCumLog2 uint32, newChild ChildFactory[V]) (*RootNode[V], error) {
	if background.IsActive() {
		return nil, ErrActiveBackground
	}
	return &RootNode[V]{
		background:   background,
		childCumLog2: childCumLog2,
		newChild:     newChild,
		children:     make(map[vec.IVec3]Noder[V]),
	}, nil
}

func (r *RootNode[V]) Level() uint32   { return 0 }
func (r *RootNode[V]) CumLog2() uint32 { return r.childCumLog2 }

func (r *RootNode[V]) Bounds() vec.IBounds3 {
	b := vec.EmptyIBounds3()
	for _, child := range r.children {
		b = b.Union(child.Bounds())
	}
	return b
}

func (r *RootNode[V]) IsActive(c vec.IVec3) bool {
	child, ok := r.children[r.key(c)]
	if !ok {
		return false
	}
	return child.IsActive(c)
}

func (r *RootNode[V]) GetVoxel(c vec.IVec3) V {
	child, ok := r.children[r.key(c)]
	if !ok {
		return r.background
	}
	return child.GetVoxel(c)
}

// SetVoxel inserts or replaces the voxel at c, lazily creating the child
// subtree that owns it. A write of the background value into a region
// with no existing child is elided: no child is created (invariant 5).
func (r *RootNode[V]) SetVoxel(c vec.IVec3, v V) (old V, existed bool) {
	k := r.key(c)
	child, ok := r.children[k]
	if !ok {
		if v == r.background {
			return old, false
		}
		child = r.newChild(k, 1)
		r.children[k] = child
	}
	return child.SetVoxel(c, v)
}

func (r *RootNode[V]) RemoveVoxel(c vec.IVec3) (old V, existed bool) {
	child, ok := r.children[r.key(c)]
	if !ok {
		return old, false
	}
	return child.RemoveVoxel(c)
}

func (r *RootNode[V]) ActiveCount() int {
	total := 0
	for _, child := range r.children {
		total += child.ActiveCount()
	}
	return total
}

func (r *RootNode[V]) TotalCount() int {
	total := 0
	for _, child := range r.children {
		total += child.TotalCount()
	}
	return total
}

// ChildCount reports the number of occupied root-slot keys, used by
// Summary's byte-footprint estimate (supplements spec.md §4.2.3, grounded
// on original_source root_node.rs).
func (r *RootNode[V]) ChildCount() int { return len(r.children) }

// Keys returns a snapshot of the occupied root-slot origins. Tests use
// this to assert invariant 3 (child-key snapping) without depending on
// map iteration order.
func (r *RootNode[V]) Keys() []vec.IVec3 {
	keys := make([]vec.IVec3, 0, len(r.children))
	for k := range r.children {
		keys = append(keys, k)
	}
	return keys
}

func (r *RootNode[V]) IterActive() iter.Seq2[vec.IVec3, V] {
	return func(yield func(vec.IVec3, V) bool) {
		for _, child := range r.children {
			for c, v := range child.IterActive() {
				if !yield(c, v) {
					return
				}
			}
		}
	}
}

func (r *RootNode[V]) IterAll() iter.Seq2[vec.IVec3, V] {
	return func(yield func(vec.IVec3, V) bool) {
		for _, child := range r.children {
			for c, v := range child.IterAll() {
				if !yield(c, v) {
					return
				}
			}
		}
	}
}

func (r *RootNode[V]) key(c vec.IVec3) vec.IVec3 { return snapKey(c, r.childCumLog2) }

var _ Noder[voidVoxel] = (*RootNode[voidVoxel])(nil)
