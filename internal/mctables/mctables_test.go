// SPDX-License-Identifier: MIT

package mctables

import "testing"

func TestEdgeTableZeroAtHomogeneousCorners(t *testing.T) {
	if EdgeTable[0] != 0 {
		t.Fatalf("EdgeTable[0] (all corners outside) must be 0, got %#x", EdgeTable[0])
	}
	if EdgeTable[255] != 0 {
		t.Fatalf("EdgeTable[255] (all corners inside) must be 0, got %#x", EdgeTable[255])
	}
}

// Each set bit in EdgeTable[idx] must correspond to an edge whose two
// corners actually disagree on which side of idx they're on — the table
// would otherwise be internally inconsistent with EdgeCorners.
func TestEdgeTableConsistentWithCornerSides(t *testing.T) {
	for idx := 0; idx < 256; idx++ {
		mask := EdgeTable[idx]
		for e := 0; e < 12; e++ {
			bitSet := mask&(1<<uint(e)) != 0
			a, b := EdgeCorners[e][0], EdgeCorners[e][1]
			sideA := idx&(1<<uint(a)) != 0
			sideB := idx&(1<<uint(b)) != 0
			differ := sideA != sideB
			if bitSet != differ {
				t.Fatalf("cube %d edge %d: EdgeTable bit=%v but corners %d/%d differ=%v", idx, e, bitSet, a, b, differ)
			}
		}
	}
}

func TestTriTableRowsTerminateAndStayInRange(t *testing.T) {
	for idx := 0; idx < 256; idx++ {
		row := TriTable[idx]
		seenTerminator := false
		for _, v := range row {
			if v == -1 {
				seenTerminator = true
				continue
			}
			if seenTerminator {
				t.Fatalf("cube %d: non-terminator entry %d after a -1 terminator", idx, v)
			}
			if v < 0 || v > 11 {
				t.Fatalf("cube %d: edge index %d out of range [0,11]", idx, v)
			}
		}
	}
}

func TestTriTableTripletsOnly(t *testing.T) {
	for idx := 0; idx < 256; idx++ {
		count := 0
		for _, v := range TriTable[idx] {
			if v == -1 {
				break
			}
			count++
		}
		if count%3 != 0 {
			t.Fatalf("cube %d: %d edge entries before terminator, not a multiple of 3", idx, count)
		}
	}
}

func TestHomogeneousCubesEmitNoTriangles(t *testing.T) {
	if TriTable[0][0] != -1 {
		t.Fatal("cube 0 (all corners outside) must emit no triangles")
	}
	if TriTable[255][0] != -1 {
		t.Fatal("cube 255 (all corners inside) must emit no triangles")
	}
}

func TestCornerOffsetsAreUnitCubeVertices(t *testing.T) {
	seen := map[[3]int32]bool{}
	for _, o := range CornerOffsets {
		if o[0] != 0 && o[0] != 1 || o[1] != 0 && o[1] != 1 || o[2] != 0 && o[2] != 1 {
			t.Fatalf("corner offset %v is not a unit-cube vertex", o)
		}
		seen[o] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct corner offsets, got %d", len(seen))
	}
}
