// SPDX-License-Identifier: MIT

package voxel

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/juliendecharentenay/yanvox/vec"
)

// leafNode is the bottom of the tree: a dense, row-major block of
// 2^(3*log2) optional payload slots. LOG2 is a runtime field rather than
// a Go type parameter — Go has no const generics, so the per-shape array
// extents the source engine expresses as `LeafNode<T, const LOG2: usize>`
// become a field read at construction time, with storage backed by a
// slice sized once and never resized. Presence is tracked with a
// bits-and-blooms/bitset.BitSet, the same "popcount-friendly presence
// bitmap next to a dense value slice" pairing gaissmai-bart's fastNode
// uses for its prefixes/children arrays.
type leafNode[V Voxel] struct {
	log2       uint32
	lvl        uint32
	origin     vec.IVec3
	background V

	present *bitset.BitSet
	data    []V
	active  int
}

// NewLeaf builds a leaf node rooted at origin with 2^log2 slots per axis,
// satisfying Noder[V]. Exported so a volume facade's shape table can wire
// it up as the bottom of any of the three tree shapes.
func NewLeaf[V Voxel](origin vec.IVec3, level uint32, log2 uint32, background V) Noder[V] {
	return newLeafNode(origin, level, log2, background)
}

func newLeafNode[V Voxel](origin vec.IVec3, level uint32, log2 uint32, background V) *leafNode[V] {
	size := uint(1) << (3 * log2)
	return &leafNode[V]{
		log2:       log2,
		lvl:        level,
		origin:     origin,
		background: background,
		present:    bitset.New(size),
		data:       make([]V, size),
	}
}

func (n *leafNode[V]) sidePerAxis() int32 { return int32(1) << n.log2 }

// index computes the dense slot index for c per spec.md §4.2.1.
func (n *leafNode[V]) index(c vec.IVec3) uint {
	mask := n.sidePerAxis() - 1
	i := c.X & mask
	j := c.Y & mask
	k := c.Z & mask
	side := n.sidePerAxis()
	return uint(i + j*side + k*side*side)
}

// coordAt reconstructs the world-voxel coordinate of slot idx.
func (n *leafNode[V]) coordAt(idx uint) vec.IVec3 {
	side := n.sidePerAxis()
	i := int32(idx) % side
	j := (int32(idx) / side) % side
	k := int32(idx) / (side * side)
	return n.origin.Add(vec.IVec3{X: i, Y: j, Z: k})
}

func (n *leafNode[V]) Level() uint32   { return n.lvl }
func (n *leafNode[V]) CumLog2() uint32 { return n.log2 }

func (n *leafNode[V]) Bounds() vec.IBounds3 {
	side := n.sidePerAxis()
	return vec.IBounds3{Min: n.origin, Max: n.origin.Add(vec.IVec3{X: side, Y: side, Z: side})}
}

func (n *leafNode[V]) IsActive(c vec.IVec3) bool {
	idx := n.index(c)
	return n.present.Test(idx) && n.data[idx].IsActive()
}

func (n *leafNode[V]) GetVoxel(c vec.IVec3) V {
	idx := n.index(c)
	if n.present.Test(idx) {
		return n.data[idx]
	}
	return n.background
}

// SetVoxel stores v at c. A write of the background value is elided
// (invariant 4, spec.md §3): if the slot was occupied it is cleared, and
// if it was empty nothing happens. This keeps "stored voxel never equals
// background" true at every node, not only where a parent decides whether
// to create a child.
func (n *leafNode[V]) SetVoxel(c vec.IVec3, v V) (old V, existed bool) {
	idx := n.index(c)
	if n.present.Test(idx) {
		old = n.data[idx]
		existed = true
	}

	if v == n.background {
		if existed {
			var zero V
			n.data[idx] = zero
			n.present.Clear(idx)
			if old.IsActive() {
				n.active--
			}
		}
		return old, existed
	}

	wasActive := existed && old.IsActive()
	n.data[idx] = v
	n.present.Set(idx)
	switch {
	case wasActive && !v.IsActive():
		n.active--
	case !wasActive && v.IsActive():
		n.active++
	}
	return old, existed
}

func (n *leafNode[V]) RemoveVoxel(c vec.IVec3) (old V, existed bool) {
	idx := n.index(c)
	if !n.present.Test(idx) {
		return old, false
	}
	old = n.data[idx]
	var zero V
	n.data[idx] = zero
	n.present.Clear(idx)
	if old.IsActive() {
		n.active--
	}
	return old, true
}

func (n *leafNode[V]) ActiveCount() int { return n.active }
func (n *leafNode[V]) TotalCount() int  { return int(n.present.Count()) }

func (n *leafNode[V]) IterAll() iter.Seq2[vec.IVec3, V] {
	return func(yield func(vec.IVec3, V) bool) {
		for idx, ok := n.present.NextSet(0); ok; idx, ok = n.present.NextSet(idx + 1) {
			if !yield(n.coordAt(idx), n.data[idx]) {
				return
			}
		}
	}
}

func (n *leafNode[V]) IterActive() iter.Seq2[vec.IVec3, V] {
	return func(yield func(vec.IVec3, V) bool) {
		for c, v := range n.IterAll() {
			if v.IsActive() {
				if !yield(c, v) {
					return
				}
			}
		}
	}
}

var _ Noder[voidVoxel] = (*leafNode[voidVoxel])(nil)
