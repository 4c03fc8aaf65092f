// SPDX-License-Identifier: MIT

// Package compression declares the leaf-payload compression tags a volume
// can be configured with. Actual compression of stored voxel data is out
// of scope (spec.md Non-goals); this package exists so Config.Compression
// is a validated, self-describing value rather than a bare string, and so
// the volume facade has a concrete place to reject unsupported kinds.
package compression

import "fmt"

// Kind names a compression scheme a volume's Config may request. Only
// None is actually implemented; LZ4 and Zstd are recognized tags reserved
// for a future on-disk/serialization format and are rejected by
// volume.New with volume.ErrUnsupportedCompression.
type Kind uint8

const (
	None Kind = iota
	LZ4
	Zstd
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression.Kind(%d)", uint8(k))
	}
}

// Supported reports whether k is implemented by this module today.
func (k Kind) Supported() bool { return k == None }
