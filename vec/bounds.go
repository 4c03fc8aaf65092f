// SPDX-License-Identifier: MIT

package vec

import "math"

// IBounds3 is a half-open axis-aligned integer box: a point p is inside
// the box iff Min.X <= p.X < Max.X on every axis. The zero value is not a
// valid empty box; use EmptyIBounds3.
type IBounds3 struct {
	Min, Max IVec3
}

// EmptyIBounds3 is the sentinel empty box: Min is +inf, Max is -inf on
// every axis, so that Union and Expand behave correctly against it.
func EmptyIBounds3() IBounds3 {
	return IBounds3{
		Min: IVec3{math.MaxInt32, math.MaxInt32, math.MaxInt32},
		Max: IVec3{math.MinInt32, math.MinInt32, math.MinInt32},
	}
}

// IsEmpty reports whether b is the empty sentinel.
func (b IBounds3) IsEmpty() bool {
	return b == EmptyIBounds3()
}

// Contains reports whether p lies within b, strict on the upper bound on
// every axis.
func (b IBounds3) Contains(p IVec3) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// Expand grows b to cover p, preserving the half-open upper-bound
// contract: the returned box always contains p.
func (b IBounds3) Expand(p IVec3) IBounds3 {
	return IBounds3{
		Min: b.Min.Min(p),
		Max: b.Max.Max(p.Add(IVec3{1, 1, 1})),
	}
}

// Union returns the smallest box covering both b and o. Either operand
// may be the empty sentinel.
func (b IBounds3) Union(o IBounds3) IBounds3 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return IBounds3{
		Min: b.Min.Min(o.Min),
		Max: b.Max.Max(o.Max),
	}
}

// Size returns the per-axis extent of b.
func (b IBounds3) Size() IVec3 {
	return b.Max.Sub(b.Min)
}

func (b IBounds3) String() string {
	return b.Min.String() + " -> " + b.Max.String()
}

// FBounds3 is the floating-point analogue of IBounds3, used to report the
// world-space extent of a volume or a mesh. Unlike IBounds3 it is closed
// on both ends: world-space extents report the bounding box of sampled
// points, not a half-open voxel-grid slot.
type FBounds3 struct {
	Min, Max FVec3
}

// EmptyFBounds3 is the sentinel empty box: Min is +inf, Max is -inf on
// every axis, so that Union and Expand behave correctly against it.
func EmptyFBounds3() FBounds3 {
	return FBounds3{
		Min: FVec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: FVec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// IsEmpty reports whether b is the empty sentinel.
func (b FBounds3) IsEmpty() bool {
	return b == EmptyFBounds3()
}

// Expand grows b to cover p.
func (b FBounds3) Expand(p FVec3) FBounds3 {
	return FBounds3{
		Min: FVec3{min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)},
		Max: FVec3{max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box covering both b and o. Either operand
// may be the empty sentinel.
func (b FBounds3) Union(o FBounds3) FBounds3 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return FBounds3{
		Min: FVec3{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)},
		Max: FVec3{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)},
	}
}

func (b FBounds3) String() string {
	return b.Min.String() + " -> " + b.Max.String()
}
