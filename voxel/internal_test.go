// SPDX-License-Identifier: MIT

package voxel

import (
	"testing"

	"github.com/juliendecharentenay/yanvox/vec"
)

func newTestLeafFactory() ChildFactory[testVoxel] {
	return func(key vec.IVec3, level uint32) Noder[testVoxel] {
		return newLeafNode[testVoxel](key, level, 1, testVoxel{})
	}
}

func TestInternalCumLog2IsSelfPlusChild(t *testing.T) {
	n := newInternalNode[testVoxel](vec.IVec3{}, 1, 2, 1, testVoxel{}, newTestLeafFactory())
	if got := n.CumLog2(); got != 3 {
		t.Fatalf("CumLog2: got %d, want 3", got)
	}
}

func TestInternalSetVoxelLazilyCreatesChild(t *testing.T) {
	n := newInternalNode[testVoxel](vec.IVec3{}, 1, 2, 1, testVoxel{}, newTestLeafFactory())

	if n.present.Count() != 0 {
		t.Fatalf("fresh internal node should have no occupied slots, got %d", n.present.Count())
	}
	n.SetVoxel(vec.IVec3{X: 1, Y: 1, Z: 1}, testVoxel{1})
	if n.present.Count() != 1 {
		t.Fatalf("after one write: occupied slots = %d, want 1", n.present.Count())
	}
	if !n.IsActive(vec.IVec3{X: 1, Y: 1, Z: 1}) {
		t.Fatal("expected the written coordinate to read back as active")
	}
}

func TestInternalSetVoxelBackgroundIntoEmptySlotElidesChild(t *testing.T) {
	n := newInternalNode[testVoxel](vec.IVec3{}, 1, 2, 1, testVoxel{}, newTestLeafFactory())
	n.SetVoxel(vec.IVec3{X: 2, Y: 2, Z: 2}, testVoxel{})
	if n.present.Count() != 0 {
		t.Fatalf("writing background into an empty slot must not allocate a child, got %d occupied", n.present.Count())
	}
}

func TestInternalIndexCoversFullExtent(t *testing.T) {
	n := newInternalNode[testVoxel](vec.IVec3{}, 1, 2, 1, testVoxel{}, newTestLeafFactory())
	seen := make(map[uint]bool)
	for k := int32(0); k < 8; k++ {
		for j := int32(0); j < 8; j++ {
			for i := int32(0); i < 8; i++ {
				idx := n.index(vec.IVec3{X: i, Y: j, Z: k})
				if idx >= 64 {
					t.Fatalf("index out of range: %d for (%d,%d,%d)", idx, i, j, k)
				}
				seen[idx] = true
			}
		}
	}
	if len(seen) != 64 {
		t.Fatalf("expected 64 distinct slot indices, got %d", len(seen))
	}
}
