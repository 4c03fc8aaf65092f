// SPDX-License-Identifier: MIT

package vec

import "testing"

func TestEmptyIBounds3(t *testing.T) {
	b := EmptyIBounds3()
	if !b.IsEmpty() {
		t.Fatal("EmptyIBounds3 should report IsEmpty")
	}
	if b.Contains(IVec3{0, 0, 0}) {
		t.Fatal("empty bounds should not contain any point")
	}
}

func TestIBounds3ContainsHalfOpen(t *testing.T) {
	b := IBounds3{Min: IVec3{0, 0, 0}, Max: IVec3{4, 4, 4}}
	if !b.Contains(IVec3{0, 0, 0}) {
		t.Error("min corner should be contained")
	}
	if b.Contains(IVec3{4, 0, 0}) {
		t.Error("upper bound should be exclusive")
	}
	if !b.Contains(IVec3{3, 3, 3}) {
		t.Error("point just inside upper bound should be contained")
	}
}

func TestIBounds3ExpandContainsPoint(t *testing.T) {
	b := EmptyIBounds3()
	p := IVec3{-5, 2, 7}
	b = b.Expand(p)
	if !b.Contains(p) {
		t.Fatalf("Expand(%v) produced bounds %v that do not contain %v", p, b, p)
	}
}

func TestIBounds3UnionWithEmpty(t *testing.T) {
	b := IBounds3{Min: IVec3{1, 1, 1}, Max: IVec3{2, 2, 2}}
	if got := b.Union(EmptyIBounds3()); got != b {
		t.Fatalf("Union with empty should be identity, got %v", got)
	}
	if got := EmptyIBounds3().Union(b); got != b {
		t.Fatalf("empty.Union(b) should equal b, got %v", got)
	}
}

func TestIBounds3Union(t *testing.T) {
	a := IBounds3{Min: IVec3{0, 0, 0}, Max: IVec3{2, 2, 2}}
	b := IBounds3{Min: IVec3{-1, 1, 5}, Max: IVec3{1, 3, 9}}
	want := IBounds3{Min: IVec3{-1, 0, 0}, Max: IVec3{2, 3, 9}}
	if got := a.Union(b); got != want {
		t.Fatalf("Union: got %v, want %v", got, want)
	}
}

func TestIBounds3Size(t *testing.T) {
	b := IBounds3{Min: IVec3{-2, 0, 1}, Max: IVec3{2, 4, 5}}
	if got := b.Size(); got != (IVec3{4, 4, 4}) {
		t.Fatalf("Size: got %v", got)
	}
}

func TestFBounds3ExpandAndUnion(t *testing.T) {
	b := EmptyFBounds3()
	if !b.IsEmpty() {
		t.Fatal("EmptyFBounds3 should report IsEmpty")
	}
	b = b.Expand(FVec3{1, -2, 3})
	b = b.Expand(FVec3{-1, 2, 0})
	want := FBounds3{Min: FVec3{-1, -2, 0}, Max: FVec3{1, 2, 3}}
	if b != want {
		t.Fatalf("Expand: got %v, want %v", b, want)
	}
	if got := b.Union(EmptyFBounds3()); got != b {
		t.Fatalf("Union with empty should be identity, got %v", got)
	}
}
