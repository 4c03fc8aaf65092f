// SPDX-License-Identifier: MIT

package vec

import "testing"

func TestIVec3Arithmetic(t *testing.T) {
	a := NewIVec3(1, -2, 3)
	b := NewIVec3(4, 5, -6)

	if got := a.Add(b); got != (IVec3{5, 3, -3}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (IVec3{-3, -7, 9}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (IVec3{2, -4, 6}) {
		t.Fatalf("Scale: got %v", got)
	}
	if got := a.Min(b); got != (IVec3{1, -2, -6}) {
		t.Fatalf("Min: got %v", got)
	}
	if got := a.Max(b); got != (IVec3{4, 5, 3}) {
		t.Fatalf("Max: got %v", got)
	}
}

func TestIVec3ToFVec3(t *testing.T) {
	got := NewIVec3(1, -2, 3).ToFVec3()
	want := NewFVec3(1, -2, 3)
	if got != want {
		t.Fatalf("ToFVec3: got %v, want %v", got, want)
	}
}

func TestFVec3Length(t *testing.T) {
	v := NewFVec3(3, 4, 0)
	if got := v.Length(); got != 5 {
		t.Fatalf("Length: got %v, want 5", got)
	}
}

func TestFVec3NormalizeZero(t *testing.T) {
	got := NewFVec3(0, 0, 0).Normalize()
	if got != (FVec3{}) {
		t.Fatalf("Normalize of zero vector: got %v, want zero vector", got)
	}
}

func TestFVec3Cross(t *testing.T) {
	x := NewFVec3(1, 0, 0)
	y := NewFVec3(0, 1, 0)
	got := x.Cross(y)
	want := NewFVec3(0, 0, 1)
	if got != want {
		t.Fatalf("Cross: got %v, want %v", got, want)
	}
}

func TestFVec3ToIVec3Truncates(t *testing.T) {
	cases := []struct {
		in   FVec3
		want IVec3
	}{
		{NewFVec3(1.9, -1.9, 0), NewIVec3(1, -1, 0)},
		{NewFVec3(-0.5, 0.5, 2.999), NewIVec3(0, 0, 2)},
	}
	for _, c := range cases {
		if got := c.in.ToIVec3(); got != c.want {
			t.Errorf("ToIVec3(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}
