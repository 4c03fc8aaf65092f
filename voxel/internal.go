// SPDX-License-Identifier: MIT

package voxel

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/juliendecharentenay/yanvox/vec"
)

// internalNode is a dense block of 2^(3*log2) optional child-node slots,
// one level above its children. Like leafNode, log2 is a runtime field;
// childCumLog2 caches the cumulative LOG2 of whatever shape of child this
// node was configured to manufacture, so index arithmetic never needs to
// instantiate a child just to ask its size.
type internalNode[V Voxel] struct {
	log2         uint32
	childCumLog2 uint32
	lvl          uint32
	origin       vec.IVec3
	background   V
	newChild     ChildFactory[V]

	present  *bitset.BitSet
	children []Noder[V]
}

// NewInternal builds an internal node rooted at origin with 2^log2 child
// slots per axis, manufacturing children of cumulative extent
// childCumLog2 via newChild. Exported so a volume facade's shape table
// can chain it between a root and a leaf (Hashx2x1, Hashx5x4) or stack of
// internals.
func NewInternal[V Voxel](origin vec.IVec3, level uint32, log2, childCumLog2 uint32, background V, newChild ChildFactory[V]) Noder[V] {
	return newInternalNode(origin, level, log2, childCumLog2, background, newChild)
}

func newInternalNode[V Voxel](origin vec.IVec3, level uint32, log2, childCumLog2 uint32, background V, newChild ChildFactory[V]) *internalNode[V] {
	size := uint(1) << (3 * log2)
	return &internalNode[V]{
		log2:         log2,
		childCumLog2: childCumLog2,
		lvl:          level,
		origin:       origin,
		background:   background,
		newChild:     newChild,
		present:      bitset.New(size),
		children:     make([]Noder[V], size),
	}
}

func (n *internalNode[V]) CumLog2() uint32 { return n.log2 + n.childCumLog2 }

// index computes the child-slot index for c, per spec.md §4.2.2: the
// local position within this node's combined (self+child) extent,
// quantized down to child granularity.
func (n *internalNode[V]) index(c vec.IVec3) uint {
	selfMask := (int32(1) << n.CumLog2()) - 1
	li := (c.X & selfMask) >> n.childCumLog2
	lj := (c.Y & selfMask) >> n.childCumLog2
	lk := (c.Z & selfMask) >> n.childCumLog2
	side := int32(1) << n.log2
	return uint(li + lj*side + lk*side*side)
}

func (n *internalNode[V]) childOrigin(c vec.IVec3) vec.IVec3 {
	return snapKey(c, n.childCumLog2)
}

func (n *internalNode[V]) Level() uint32 { return n.lvl }

func (n *internalNode[V]) Bounds() vec.IBounds3 {
	side := int32(1) << n.CumLog2()
	return vec.IBounds3{Min: n.origin, Max: n.origin.Add(vec.IVec3{X: side, Y: side, Z: side})}
}

func (n *internalNode[V]) IsActive(c vec.IVec3) bool {
	idx := n.index(c)
	if !n.present.Test(idx) {
		return false
	}
	return n.children[idx].IsActive(c)
}

func (n *internalNode[V]) GetVoxel(c vec.IVec3) V {
	idx := n.index(c)
	if n.present.Test(idx) {
		return n.children[idx].GetVoxel(c)
	}
	return n.background
}

// SetVoxel delegates to the child slot for c, creating it lazily. If the
// slot is absent and v equals the background, the write is elided and no
// child is ever allocated (invariants 4 and 5, spec.md §3).
func (n *internalNode[V]) SetVoxel(c vec.IVec3, v V) (old V, existed bool) {
	idx := n.index(c)
	if n.present.Test(idx) {
		return n.children[idx].SetVoxel(c, v)
	}
	if v == n.background {
		return old, false
	}
	child := n.newChild(n.childOrigin(c), n.lvl+1)
	n.children[idx] = child
	n.present.Set(idx)
	return child.SetVoxel(c, v)
}

func (n *internalNode[V]) RemoveVoxel(c vec.IVec3) (old V, existed bool) {
	idx := n.index(c)
	if !n.present.Test(idx) {
		return old, false
	}
	return n.children[idx].RemoveVoxel(c)
}

func (n *internalNode[V]) ActiveCount() int {
	total := 0
	for idx, ok := n.present.NextSet(0); ok; idx, ok = n.present.NextSet(idx + 1) {
		total += n.children[idx].ActiveCount()
	}
	return total
}

func (n *internalNode[V]) TotalCount() int {
	total := 0
	for idx, ok := n.present.NextSet(0); ok; idx, ok = n.present.NextSet(idx + 1) {
		total += n.children[idx].TotalCount()
	}
	return total
}

func (n *internalNode[V]) IterAll() iter.Seq2[vec.IVec3, V] {
	return func(yield func(vec.IVec3, V) bool) {
		for idx, ok := n.present.NextSet(0); ok; idx, ok = n.present.NextSet(idx + 1) {
			for c, v := range n.children[idx].IterAll() {
				if !yield(c, v) {
					return
				}
			}
		}
	}
}

func (n *internalNode[V]) IterActive() iter.Seq2[vec.IVec3, V] {
	return func(yield func(vec.IVec3, V) bool) {
		for idx, ok := n.present.NextSet(0); ok; idx, ok = n.present.NextSet(idx + 1) {
			for c, v := range n.children[idx].IterActive() {
				if !yield(c, v) {
					return
				}
			}
		}
	}
}

var _ Noder[voidVoxel] = (*internalNode[voidVoxel])(nil)
