// SPDX-License-Identifier: MIT

package voxeldata

import "testing"

func TestBoolVoxelActivity(t *testing.T) {
	if (BoolVoxel{}).IsActive() {
		t.Fatal("zero BoolVoxel must be inactive")
	}
	if !(BoolVoxel{Occupied: true}).IsActive() {
		t.Fatal("occupied BoolVoxel must be active")
	}
}

func TestIntVoxelActivity(t *testing.T) {
	if (IntVoxel{}).IsActive() {
		t.Fatal("zero IntVoxel must be inactive")
	}
	if !(IntVoxel{Value: -3}).IsActive() {
		t.Fatal("negative IntVoxel must be active")
	}
}

func TestFloatVoxelActivityAndSignedDistance(t *testing.T) {
	v := FloatVoxel{Value: -0.25}
	if !v.IsActive() {
		t.Fatal("non-zero FloatVoxel must be active")
	}
	if v.SignedDistance() != -0.25 {
		t.Fatalf("SignedDistance: got %v, want -0.25", v.SignedDistance())
	}
	if (FloatVoxel{}).IsActive() {
		t.Fatal("zero FloatVoxel must be inactive")
	}
}
