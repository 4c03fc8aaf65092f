// SPDX-License-Identifier: MIT

package volume

import (
	"github.com/juliendecharentenay/yanvox/vec"
	"github.com/juliendecharentenay/yanvox/voxel"
)

// Shape selects one of the three recognized tree hierarchies (spec.md §3).
// Each names a root-to-leaf path; the shape alone determines every LOG2 in
// that path, so building the root->leaf chain for a shape needs nothing
// beyond the background value.
type Shape uint8

const (
	// Default is Root -> Leaf(LOG2=2): leaf and root-slot extent both 4.
	Default Shape = iota
	// Hashx2x1 is Root -> Internal(LOG2=2) -> Leaf(LOG2=1): root-slot extent 8.
	Hashx2x1
	// Hashx5x4 is Root -> Internal(LOG2=5) -> Leaf(LOG2=4): root-slot extent 512.
	Hashx5x4
)

func (s Shape) String() string {
	switch s {
	case Default:
		return "default"
	case Hashx2x1:
		return "hashx2x1"
	case Hashx5x4:
		return "hashx5x4"
	default:
		return "unknown"
	}
}

// newRoot builds a fresh *voxel.RootNode[V] wired for shape s. It is the
// one place the three hierarchies of spec.md §3 are actually assembled;
// everything above this point in the volume facade talks only to the
// resulting *voxel.RootNode[V] through its exported Noder surface.
func newRoot[V voxel.Voxel](s Shape, background V) (*voxel.RootNode[V], error) {
	switch s {
	case Default:
		// Root -> Leaf(LOG2=2)
		newLeaf := func(key vec.IVec3, level uint32) voxel.Noder[V] {
			return voxel.NewLeaf[V](key, level, 2, background)
		}
		return voxel.NewRoot[V](background, 2, newLeaf)

	case Hashx2x1:
		// Root -> Internal(LOG2=2) -> Leaf(LOG2=1)
		newLeaf := func(key vec.IVec3, level uint32) voxel.Noder[V] {
			return voxel.NewLeaf[V](key, level, 1, background)
		}
		newInternal := func(key vec.IVec3, level uint32) voxel.Noder[V] {
			return voxel.NewInternal[V](key, level, 2, 1, background, newLeaf)
		}
		return voxel.NewRoot[V](background, 3, newInternal)

	case Hashx5x4:
		// Root -> Internal(LOG2=5) -> Leaf(LOG2=4)
		newLeaf := func(key vec.IVec3, level uint32) voxel.Noder[V] {
			return voxel.NewLeaf[V](key, level, 4, background)
		}
		newInternal := func(key vec.IVec3, level uint32) voxel.Noder[V] {
			return voxel.NewInternal[V](key, level, 5, 4, background, newLeaf)
		}
		return voxel.NewRoot[V](background, 9, newInternal)

	default:
		return voxel.NewRoot[V](background, 2, func(key vec.IVec3, level uint32) voxel.Noder[V] {
			return voxel.NewLeaf[V](key, level, 2, background)
		})
	}
}
