// SPDX-License-Identifier: MIT

package volume

import (
	"math"
	"testing"

	"github.com/juliendecharentenay/yanvox/compression"
	"github.com/juliendecharentenay/yanvox/vec"
	"github.com/juliendecharentenay/yanvox/voxel/voxeldata"
)

func defaultConfig() Config {
	return Config{LeafVoxelSize: 0.02, Shape: Default, Compression: compression.None}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New[voxeldata.FloatVoxel](Config{LeafVoxelSize: 0}, voxeldata.FloatVoxel{}); err == nil {
		t.Fatal("expected an error for non-positive leaf voxel size")
	}
	cfg := defaultConfig()
	cfg.Compression = compression.Zstd
	if _, err := New[voxeldata.FloatVoxel](cfg, voxeldata.FloatVoxel{}); err == nil {
		t.Fatal("expected an error for unsupported compression")
	}
}

// Scenario A: empty volume.
func TestEmptyVolume(t *testing.T) {
	vol, err := New[voxeldata.FloatVoxel](defaultConfig(), voxeldata.FloatVoxel{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if vol.ActiveCount() != 0 || vol.TotalCount() != 0 {
		t.Fatalf("expected zero counts on an empty volume, got active=%d total=%d", vol.ActiveCount(), vol.TotalCount())
	}
	if !vol.Bounds().IsEmpty() {
		t.Fatalf("expected empty bounds, got %v", vol.Bounds())
	}
	for range vol.ActiveVoxels() {
		t.Fatal("expected no active voxels")
	}
	if got := vol.GetVoxel(vec.IVec3{}); got.IsActive() {
		t.Fatal("GetVoxel on an empty volume must return the (inactive) background")
	}
}

// Scenario B: single write, overwrite, remove.
func TestSetOverwriteRemove(t *testing.T) {
	vol, err := New[voxeldata.FloatVoxel](Config{LeafVoxelSize: 1, Shape: Hashx2x1}, voxeldata.FloatVoxel{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := vec.IVec3{X: 1, Y: 2, Z: 3}

	old, existed := vol.SetVoxel(c, voxeldata.FloatVoxel{Value: 2.0})
	if existed {
		t.Fatalf("first write should report existed=false, got old=%v", old)
	}
	old, existed = vol.SetVoxel(c, voxeldata.FloatVoxel{Value: 5.0})
	if !existed || old.Value != 2.0 {
		t.Fatalf("overwrite: got (%v, %v), want (2.0, true)", old.Value, existed)
	}
	old, existed = vol.RemoveVoxel(c)
	if !existed || old.Value != 5.0 {
		t.Fatalf("remove: got (%v, %v), want (5.0, true)", old.Value, existed)
	}
	if vol.ActiveCount() != 0 {
		t.Fatalf("ActiveCount after remove: got %d, want 0", vol.ActiveCount())
	}
	if got := vol.GetVoxel(c); got.IsActive() {
		t.Fatal("removed voxel should read back as background")
	}
}

// Scenario C: negative-coordinate snapping under Hashx5x4 (cumulative
// LOG2 = 9, extent 512).
func TestHashx5x4NegativeSnapping(t *testing.T) {
	vol, err := New[voxeldata.FloatVoxel](Config{LeafVoxelSize: 1, Shape: Hashx5x4}, voxeldata.FloatVoxel{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	vol.SetVoxel(vec.IVec3{X: 31, Y: -31, Z: -65}, voxeldata.FloatVoxel{Value: 1})

	keys := vol.root.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected exactly one root child, got %d", len(keys))
	}
	want := vec.IVec3{X: 0, Y: -512, Z: -512}
	if keys[0] != want {
		t.Fatalf("root child key: got %v, want %v", keys[0], want)
	}
}

// Scenario D: sphere SDF fill.
func TestFillBoundsSphereSDF(t *testing.T) {
	vol, err := New[voxeldata.FloatVoxel](defaultConfig(), voxeldata.FloatVoxel{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const shell = 0.5
	activeAccepted := 0
	count := vol.FillBounds(
		vec.NewFVec3(-2, -2, -2), vec.NewFVec3(2, 2, 2),
		func(w vec.FVec3) (voxeldata.FloatVoxel, bool) {
			d := w.Length() - 1.0
			if d < 0 {
				d = -d
			}
			if d >= shell {
				return voxeldata.FloatVoxel{}, false
			}
			v := voxeldata.FloatVoxel{Value: w.Length() - 1.0}
			if v.IsActive() {
				activeAccepted++
			}
			return v, true
		},
	)
	if count == 0 {
		t.Fatal("expected a nonzero active count from the sphere fill")
	}
	// Points exactly on the unit sphere yield a zero distance, which equals
	// the background: FillBounds counts them but does not store them.
	if got := vol.ActiveCount(); got != activeAccepted {
		t.Fatalf("ActiveCount=%d should equal the fill's accepted active payloads=%d", got, activeAccepted)
	}
	for c, v := range vol.ActiveVoxels() {
		if !v.IsActive() {
			t.Fatalf("iterated voxel at %v must be active", c)
		}
		r := vol.World(c).Length()
		if r < 0.5-vol.GetLeafVoxelSize() || r > 1.5+vol.GetLeafVoxelSize() {
			t.Fatalf("voxel at %v has radius %v outside [0.5, 1.5] within one leaf voxel", c, r)
		}
	}
}

func TestVoxelWorldRoundTrip(t *testing.T) {
	vol, err := New[voxeldata.FloatVoxel](defaultConfig(), voxeldata.FloatVoxel{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, c := range []vec.IVec3{{0, 0, 0}, {5, -5, 5}, {-100, 3, -7}} {
		if got := vol.Voxel(vol.World(c)); got != c {
			t.Errorf("round trip voxel(world(%v)) = %v", c, got)
		}
	}
}

func TestSnapToVoxelCenterIdempotent(t *testing.T) {
	vol, err := New[voxeldata.FloatVoxel](defaultConfig(), voxeldata.FloatVoxel{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w := vec.NewFVec3(0.037, -1.234, 5.0)
	once := vol.SnapToVoxelCenter(w)
	twice := vol.SnapToVoxelCenter(once)
	if once != twice {
		t.Fatalf("SnapToVoxelCenter not idempotent: %v != %v", once, twice)
	}
}

// SnapToVoxelCenter must round to the nearest lattice point, not floor to
// the containing cell's corner plus a half step: with step=1, w=0.3 snaps
// to 0.0 (nearest multiple of step), not 0.5.
func TestSnapToVoxelCenterRoundsToNearestLattice(t *testing.T) {
	vol, err := New[voxeldata.FloatVoxel](Config{LeafVoxelSize: 1, Shape: Default}, voxeldata.FloatVoxel{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := vol.SnapToVoxelCenter(vec.NewFVec3(0.3, 0.3, 0.3))
	want := vec.NewFVec3(0, 0, 0)
	if got != want {
		t.Fatalf("SnapToVoxelCenter(0.3): got %v, want %v", got, want)
	}
	got = vol.SnapToVoxelCenter(vec.NewFVec3(0.7, -0.7, 1.6))
	want = vec.NewFVec3(1, -1, 2)
	if got != want {
		t.Fatalf("SnapToVoxelCenter(0.7,-0.7,1.6): got %v, want %v", got, want)
	}
}

func TestGetRootVoxelSize(t *testing.T) {
	vol, err := New[voxeldata.FloatVoxel](Config{LeafVoxelSize: 0.5, Shape: Hashx5x4}, voxeldata.FloatVoxel{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := float32(0.5 * math.Pow(2, 9))
	if got := vol.GetRootVoxelSize(); got != want {
		t.Fatalf("GetRootVoxelSize: got %v, want %v", got, want)
	}
}
