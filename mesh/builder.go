// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/juliendecharentenay/yanvox/internal/mctables"
	"github.com/juliendecharentenay/yanvox/vec"
	"github.com/juliendecharentenay/yanvox/voxel"
	"github.com/juliendecharentenay/yanvox/volume"
)

// ErrNoIsoLevel is returned by Build when WithIsoLevel was never called.
var ErrNoIsoLevel = errors.New("mesh: no iso-level set")

// ErrInvalidIsoLevel is returned by Build when the configured iso-level
// is NaN or infinite.
var ErrInvalidIsoLevel = errors.New("mesh: invalid iso-level")

// ErrGenerationFailed is reserved for future mesher failures (spec.md
// §7); nothing in this implementation raises it today.
var ErrGenerationFailed = errors.New("mesh: generation failed")

// degenerateEpsilon is the threshold below which two corner signed
// distances are treated as equal, forcing the interpolation parameter to
// the edge's midpoint rather than dividing by a near-zero difference.
const degenerateEpsilon = 1e-6

// Builder constructs a Mesh from a volume whose payload implements
// voxel.SignedDistance, per spec.md §4.4/§6.
type Builder[V voxel.SignedDistance] struct {
	vol      *volume.Volume[V]
	isoLevel *float32
}

// NewBuilder returns a Builder over vol. Call WithIsoLevel before Build.
func NewBuilder[V voxel.SignedDistance](vol *volume.Volume[V]) *Builder[V] {
	return &Builder[V]{vol: vol}
}

// WithIsoLevel sets the scalar threshold separating inside (sd < tau)
// from outside.
func (b *Builder[V]) WithIsoLevel(tau float32) *Builder[V] {
	b.isoLevel = &tau
	return b
}

// Build runs the marching-cubes extraction described in spec.md §4.4 and
// returns the resulting mesh.
func (b *Builder[V]) Build() (*Mesh, error) {
	if b.isoLevel == nil {
		return nil, ErrNoIsoLevel
	}
	tau := *b.isoLevel
	if math.IsNaN(float64(tau)) || math.IsInf(float64(tau), 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIsoLevel, tau)
	}

	m := &Mesh{}
	leafSize := b.vol.GetLeafVoxelSize()

	for c := range b.vol.ActiveVoxels() {
		b.processCube(m, c, tau, leafSize)
	}
	return m, nil
}

func (b *Builder[V]) processCube(m *Mesh, c vec.IVec3, tau, leafSize float32) {
	var sd [8]float32
	for i, o := range mctables.CornerOffsets {
		corner := c.Add(vec.IVec3{X: o[0], Y: o[1], Z: o[2]})
		if !b.vol.IsActive(corner) {
			return
		}
		sd[i] = b.vol.GetVoxel(corner).SignedDistance()
	}

	cubeIdx := 0
	for i := 0; i < 8; i++ {
		if sd[i] < tau {
			cubeIdx |= 1 << uint(i)
		}
	}
	if cubeIdx == 0 || cubeIdx == 255 {
		return
	}

	edgeMask := mctables.EdgeTable[cubeIdx]
	var edgeVertex [12]vec.FVec3
	for e := 0; e < 12; e++ {
		if edgeMask&(1<<uint(e)) == 0 {
			continue
		}
		ca, cb := mctables.EdgeCorners[e][0], mctables.EdgeCorners[e][1]
		a, bv := sd[ca], sd[cb]

		t := float32(0.5)
		if diff := bv - a; diff > degenerateEpsilon || diff < -degenerateEpsilon {
			t = (tau - a) / diff
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}

		oa, ob := mctables.CornerOffsets[ca], mctables.CornerOffsets[cb]
		offA := vec.NewFVec3(float32(oa[0]), float32(oa[1]), float32(oa[2]))
		offB := vec.NewFVec3(float32(ob[0]), float32(ob[1]), float32(ob[2]))
		localOffset := offA.Add(offB.Sub(offA).Scale(t))
		edgeVertex[e] = c.ToFVec3().Add(localOffset).Scale(leafSize)
	}

	tris := mctables.TriTable[cubeIdx]
	for i := 0; i+2 < len(tris) && tris[i] != -1; i += 3 {
		m.addTriangle(edgeVertex[tris[i]], edgeVertex[tris[i+1]], edgeVertex[tris[i+2]])
	}
}
