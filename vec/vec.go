// SPDX-License-Identifier: MIT

// Package vec provides the integer and floating point 3-vector primitives
// used throughout the voxel tree, the volume facade and the mesher.
package vec

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// IVec3 is a 3-component vector of signed 32-bit integers, used for all
// voxel-space coordinates.
type IVec3 struct {
	X, Y, Z int32
}

// NewIVec3 builds an IVec3 from its components.
func NewIVec3(x, y, z int32) IVec3 { return IVec3{X: x, Y: y, Z: z} }

// Add returns the component-wise sum.
func (v IVec3) Add(o IVec3) IVec3 {
	return IVec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v IVec3) Sub(o IVec3) IVec3 {
	return IVec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v with every component multiplied by s.
func (v IVec3) Scale(s int32) IVec3 {
	return IVec3{v.X * s, v.Y * s, v.Z * s}
}

// Min returns the component-wise minimum.
func (v IVec3) Min(o IVec3) IVec3 {
	return IVec3{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the component-wise maximum.
func (v IVec3) Max(o IVec3) IVec3 {
	return IVec3{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// ToFVec3 converts to a floating point vector without scaling.
func (v IVec3) ToFVec3() FVec3 {
	return FVec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v IVec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// FVec3 is a 3-component vector of 32-bit floats, used for world-space
// positions. The heavier operations (cross product, normalization, length)
// are delegated to mgl32.Vec3.
type FVec3 struct {
	X, Y, Z float32
}

// NewFVec3 builds an FVec3 from its components.
func NewFVec3(x, y, z float32) FVec3 { return FVec3{X: x, Y: y, Z: z} }

func (v FVec3) mgl() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

func fromMgl(m mgl32.Vec3) FVec3 { return FVec3{m[0], m[1], m[2]} }

// Add returns the component-wise sum.
func (v FVec3) Add(o FVec3) FVec3 {
	return fromMgl(v.mgl().Add(o.mgl()))
}

// Sub returns the component-wise difference.
func (v FVec3) Sub(o FVec3) FVec3 {
	return fromMgl(v.mgl().Sub(o.mgl()))
}

// Scale returns v with every component multiplied by f.
func (v FVec3) Scale(f float32) FVec3 {
	return fromMgl(v.mgl().Mul(f))
}

// Length returns the Euclidean length of v.
func (v FVec3) Length() float32 {
	return v.mgl().Len()
}

// Cross returns the cross product v x o.
func (v FVec3) Cross(o FVec3) FVec3 {
	return fromMgl(v.mgl().Cross(o.mgl()))
}

// Normalize returns v scaled to unit length, or the zero vector if v has
// zero length.
func (v FVec3) Normalize() FVec3 {
	if v.Length() == 0 {
		return FVec3{}
	}
	return fromMgl(v.mgl().Normalize())
}

// ToIVec3 truncates every component toward zero, matching the source
// engine's `as i32` cast semantics (see SPEC_FULL.md §13 open question 1).
func (v FVec3) ToIVec3() IVec3 {
	return IVec3{int32(v.X), int32(v.Y), int32(v.Z)}
}

func (v FVec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
