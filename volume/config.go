// SPDX-License-Identifier: MIT

package volume

import (
	"errors"
	"fmt"

	"github.com/juliendecharentenay/yanvox/compression"
)

// Config is the exhaustive set of construction-time options from spec.md
// §4.3, passed directly to New — no functional-options indirection,
// matching gaissmai-bart.Table[V]'s plain-struct directness.
type Config struct {
	// LeafVoxelSize is the real-world edge length of one leaf voxel; must
	// be positive.
	LeafVoxelSize float32
	// Shape chooses the tree hierarchy (see Shape).
	Shape Shape
	// Compression is a forward-looking tag; only compression.None is
	// implemented today.
	Compression compression.Kind
}

// ErrUnsupportedCompression is returned by New when Config.Compression
// names a scheme this module does not implement.
var ErrUnsupportedCompression = errors.New("volume: unsupported compression kind")

// ErrInvalidLeafVoxelSize is returned by New when LeafVoxelSize is not
// strictly positive.
var ErrInvalidLeafVoxelSize = errors.New("volume: leaf voxel size must be positive")

func (c Config) validate() error {
	if c.LeafVoxelSize <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidLeafVoxelSize, c.LeafVoxelSize)
	}
	if !c.Compression.Supported() {
		return fmt.Errorf("%w: %v", ErrUnsupportedCompression, c.Compression)
	}
	return nil
}
