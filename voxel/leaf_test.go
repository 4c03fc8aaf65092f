// SPDX-License-Identifier: MIT

package voxel

import (
	"testing"

	"github.com/juliendecharentenay/yanvox/vec"
)

func TestLeafIndexRoundTrip(t *testing.T) {
	n := newLeafNode[testVoxel](vec.IVec3{X: 8, Y: 8, Z: 8}, 2, 2, testVoxel{})
	for i, j, k := int32(0), int32(0), int32(0); k < 4; k++ {
		for j = 0; j < 4; j++ {
			for i = 0; i < 4; i++ {
				c := n.origin.Add(vec.IVec3{X: i, Y: j, Z: k})
				idx := n.index(c)
				if got := n.coordAt(idx); got != c {
					t.Fatalf("coordAt(index(%v))=%v, want %v", c, got, c)
				}
			}
		}
	}
}

func TestLeafSetVoxelActiveCounting(t *testing.T) {
	n := newLeafNode[testVoxel](vec.IVec3{}, 1, 2, testVoxel{})
	c := vec.IVec3{X: 1, Y: 1, Z: 1}

	n.SetVoxel(c, testVoxel{1})
	if n.ActiveCount() != 1 {
		t.Fatalf("after one active write: ActiveCount=%d, want 1", n.ActiveCount())
	}
	// Replacing one active payload with another active payload must not
	// change the counter.
	n.SetVoxel(c, testVoxel{2})
	if n.ActiveCount() != 1 {
		t.Fatalf("after replacing active with active: ActiveCount=%d, want 1", n.ActiveCount())
	}
	n.SetVoxel(c, testVoxel{})
	if n.ActiveCount() != 0 {
		t.Fatalf("after writing background: ActiveCount=%d, want 0", n.ActiveCount())
	}
	if n.TotalCount() != 0 {
		t.Fatalf("background write must clear the slot entirely: TotalCount=%d, want 0", n.TotalCount())
	}
}

func TestLeafBoundsMatchesOriginAndExtent(t *testing.T) {
	n := newLeafNode[testVoxel](vec.IVec3{X: 4, Y: 0, Z: -4}, 1, 2, testVoxel{})
	want := vec.IBounds3{Min: vec.IVec3{X: 4, Y: 0, Z: -4}, Max: vec.IVec3{X: 8, Y: 4, Z: 0}}
	if got := n.Bounds(); got != want {
		t.Fatalf("Bounds: got %v, want %v", got, want)
	}
}
