// SPDX-License-Identifier: MIT

// Package volume implements the world-space facade over the sparse voxel
// tree: configuration-driven tree-shape selection, world<->voxel coordinate
// mapping, the region-fill primitive, and summary reporting.
package volume

import (
	"iter"
	"math"

	"github.com/juliendecharentenay/yanvox/vec"
	"github.com/juliendecharentenay/yanvox/voxel"
)

// Volume is the generic container parameterized by payload V, owning
// exactly one tree of the shape named by its Config.
type Volume[V voxel.Voxel] struct {
	cfg  Config
	root *voxel.RootNode[V]
}

// New constructs a Volume for the given configuration and background
// payload. It fails if cfg is invalid (non-positive leaf voxel size,
// unsupported compression) or if background reports itself active.
func New[V voxel.Voxel](cfg Config, background V) (*Volume[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	root, err := newRoot(cfg.Shape, background)
	if err != nil {
		return nil, err
	}
	return &Volume[V]{cfg: cfg, root: root}, nil
}

// Voxel converts a world-space position to a voxel coordinate: world /
// leafVoxelSize on each axis, truncated toward zero to match the source
// engine's cast semantics (SPEC_FULL.md §13 open question 1). For negative
// non-integer quotients this is not the floor: a world x of
// -0.5*leafVoxelSize maps to voxel x 0.
func (vol *Volume[V]) Voxel(w vec.FVec3) vec.IVec3 {
	step := vol.cfg.LeafVoxelSize
	return vec.FVec3{X: w.X / step, Y: w.Y / step, Z: w.Z / step}.ToIVec3()
}

// World converts a voxel coordinate to the world-space position of its
// lower corner.
func (vol *Volume[V]) World(c vec.IVec3) vec.FVec3 {
	return c.ToFVec3().Scale(vol.cfg.LeafVoxelSize)
}

// SnapToVoxelCenter returns the world-space lattice point nearest w, at
// spacing leafVoxelSize per axis: round(w/step)*step, matching
// voxel.rs's snap_to_voxel_center exactly (not a floor-then-half-step,
// which would snap to a different point whenever w falls in the lower
// half of its cell). Idempotent: calling it again on its own output
// returns the same point (spec.md §8 testable property 6).
func (vol *Volume[V]) SnapToVoxelCenter(w vec.FVec3) vec.FVec3 {
	step := vol.cfg.LeafVoxelSize
	return vec.FVec3{
		X: float32(math.Round(float64(w.X/step))) * step,
		Y: float32(math.Round(float64(w.Y/step))) * step,
		Z: float32(math.Round(float64(w.Z/step))) * step,
	}
}

func (vol *Volume[V]) GetVoxel(c vec.IVec3) V            { return vol.root.GetVoxel(c) }
func (vol *Volume[V]) SetVoxel(c vec.IVec3, v V) (V, bool) { return vol.root.SetVoxel(c, v) }
func (vol *Volume[V]) RemoveVoxel(c vec.IVec3) (V, bool)  { return vol.root.RemoveVoxel(c) }
func (vol *Volume[V]) IsActive(c vec.IVec3) bool          { return vol.root.IsActive(c) }

func (vol *Volume[V]) GetVoxelWorld(w vec.FVec3) V { return vol.GetVoxel(vol.Voxel(w)) }
func (vol *Volume[V]) SetVoxelWorld(w vec.FVec3, v V) (V, bool) {
	return vol.SetVoxel(vol.Voxel(w), v)
}
func (vol *Volume[V]) RemoveVoxelWorld(w vec.FVec3) (V, bool) { return vol.RemoveVoxel(vol.Voxel(w)) }
func (vol *Volume[V]) IsActiveWorld(w vec.FVec3) bool         { return vol.IsActive(vol.Voxel(w)) }

// FillBounds enumerates every integer voxel coordinate in the half-open
// world-space box [minW, maxW), invoking gen at each world-space voxel
// corner. gen returns (payload, true) to accept the voxel or (_, false) to
// skip it. It returns the number of voxels gen accepted; an accepted
// payload equal to the background is counted but not stored.
//
// Enumeration order is x-fastest, then y, then z (spec.md §4.3); gen must
// not re-enter a mutating operation on vol.
func (vol *Volume[V]) FillBounds(minW, maxW vec.FVec3, gen func(world vec.FVec3) (V, bool)) int {
	minC, maxC := vol.Voxel(minW), vol.Voxel(maxW)
	count := 0
	for z := minC.Z; z < maxC.Z; z++ {
		for y := minC.Y; y < maxC.Y; y++ {
			for x := minC.X; x < maxC.X; x++ {
				c := vec.IVec3{X: x, Y: y, Z: z}
				payload, ok := gen(vol.World(c))
				if !ok {
					continue
				}
				vol.SetVoxel(c, payload)
				count++
			}
		}
	}
	return count
}

// FillRegionBounds is FillBounds over an explicit world-space box.
func (vol *Volume[V]) FillRegionBounds(box vec.FBounds3, gen func(world vec.FVec3) (V, bool)) int {
	return vol.FillBounds(box.Min, box.Max, gen)
}

func (vol *Volume[V]) ActiveCount() int { return vol.root.ActiveCount() }
func (vol *Volume[V]) TotalCount() int  { return vol.root.TotalCount() }
func (vol *Volume[V]) Bounds() vec.IBounds3 { return vol.root.Bounds() }

// WorldBounds is the world-space extent of Bounds().
func (vol *Volume[V]) WorldBounds() vec.FBounds3 {
	b := vol.Bounds()
	if b.IsEmpty() {
		return vec.EmptyFBounds3()
	}
	return vec.FBounds3{Min: vol.World(b.Min), Max: vol.World(b.Max)}
}

// GetLeafVoxelSize returns the configured real-world leaf voxel edge
// length.
func (vol *Volume[V]) GetLeafVoxelSize() float32 { return vol.cfg.LeafVoxelSize }

// GetRootVoxelSize returns the real-world edge length of one root-slot,
// i.e. leafVoxelSize * 2^(root's cumulative LOG2).
func (vol *Volume[V]) GetRootVoxelSize() float32 {
	return vol.cfg.LeafVoxelSize * float32(int64(1)<<vol.root.CumLog2())
}

// ActiveVoxels returns a lazy (coord, payload) sequence over every active
// voxel in the tree.
func (vol *Volume[V]) ActiveVoxels() iter.Seq2[vec.IVec3, V] { return vol.root.IterActive() }

// Summary reports the figures spec.md §4.3 requires: root-slot extent,
// leaf voxel size, integer and world bounds, active/total counts, and an
// informational byte-footprint estimate.
type Summary struct {
	RootVoxelSize  float32
	LeafVoxelSize  float32
	Bounds         vec.IBounds3
	WorldBounds    vec.FBounds3
	ActiveCount    int
	TotalCount     int
	EstimatedBytes int64
}

// Summary computes a Summary snapshot of vol. The byte-footprint estimate
// is informational only (spec.md §4.3: "accuracy is not a correctness
// requirement"); it approximates one stored payload as 8 bytes plus a
// constant overhead per occupied root slot.
func (vol *Volume[V]) Summary() Summary {
	const bytesPerVoxel = 8
	const bytesPerNode = 64
	return Summary{
		RootVoxelSize:  vol.GetRootVoxelSize(),
		LeafVoxelSize:  vol.GetLeafVoxelSize(),
		Bounds:         vol.Bounds(),
		WorldBounds:    vol.WorldBounds(),
		ActiveCount:    vol.ActiveCount(),
		TotalCount:     vol.TotalCount(),
		EstimatedBytes: int64(vol.TotalCount())*bytesPerVoxel + int64(vol.root.ChildCount())*bytesPerNode,
	}
}
