// SPDX-License-Identifier: MIT

// Package voxeldata provides ready-made Voxel payload types for the three
// primitive shapes the source engine's `voxel_data` module ships: a plain
// occupancy flag, a signed distance / scalar field value, and a signed
// integer counter. Each is a one-field comparable struct so it satisfies
// voxel.Voxel (and, for FloatVoxel, voxel.SignedDistance) without any
// runtime type assertion.
package voxeldata

// BoolVoxel is a simple occupied/empty voxel. The zero value, BoolVoxel{},
// is both Go's zero value and the tree's required inactive background.
type BoolVoxel struct{ Occupied bool }

func (v BoolVoxel) IsActive() bool { return v.Occupied }

// IntVoxel carries a signed integer payload, active whenever non-zero.
type IntVoxel struct{ Value int32 }

func (v IntVoxel) IsActive() bool { return v.Value != 0 }

// FloatVoxel carries a scalar field value — typically a signed distance to
// an isosurface — active whenever non-zero, and implements
// voxel.SignedDistance so it can feed the mesh builder directly.
type FloatVoxel struct{ Value float32 }

func (v FloatVoxel) IsActive() bool          { return v.Value != 0 }
func (v FloatVoxel) SignedDistance() float32 { return v.Value }
