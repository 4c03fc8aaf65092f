// SPDX-License-Identifier: MIT

// Command yanvox-example builds a unit-sphere signed-distance volume,
// extracts its isosurface, and writes the result as a binary STL file. It
// is a thin driver, not part of the core library surface.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/juliendecharentenay/yanvox/mesh"
	"github.com/juliendecharentenay/yanvox/mesh/stl"
	"github.com/juliendecharentenay/yanvox/vec"
	"github.com/juliendecharentenay/yanvox/volume"
	"github.com/juliendecharentenay/yanvox/voxel/voxeldata"
)

func main() {
	var (
		flagLeafVoxelSize float32
		flagShape         string
		flagIsoLevel      float32
		flagOut           string
		flagLevel         string
	)

	pflag.Float32VarP(&flagLeafVoxelSize, "leaf-voxel-size", "s", 0.02, "real-world edge length of one leaf voxel")
	pflag.StringVarP(&flagShape, "shape", "t", "default", "tree shape: default, hashx2x1, hashx5x4")
	pflag.Float32VarP(&flagIsoLevel, "iso-level", "i", 0.0, "marching-cubes iso-level")
	pflag.StringVarP(&flagOut, "out", "o", "sphere.stl", "output binary STL path")
	pflag.StringVarP(&flagLevel, "log-level", "l", "info", "log output level")
	pflag.Parse()

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse log level")
	}
	log = log.Level(level)

	shape, err := parseShape(flagShape)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse shape")
	}

	vol, err := volume.New[voxeldata.FloatVoxel](
		volume.Config{LeafVoxelSize: flagLeafVoxelSize, Shape: shape},
		voxeldata.FloatVoxel{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("could not construct volume")
	}

	count := vol.FillBounds(
		vec.NewFVec3(-2, -2, -2), vec.NewFVec3(2, 2, 2),
		func(w vec.FVec3) (voxeldata.FloatVoxel, bool) {
			d := w.Length() - 1.0
			if d < 0 {
				d = -d
			}
			if d >= 0.5 {
				return voxeldata.FloatVoxel{}, false
			}
			return voxeldata.FloatVoxel{Value: w.Length() - 1.0}, true
		},
	)
	log.Info().Int("voxels", count).Interface("summary", vol.Summary()).Msg("filled sphere volume")

	m, err := mesh.NewBuilder(vol).WithIsoLevel(flagIsoLevel).Build()
	if err != nil {
		log.Fatal().Err(err).Msg("could not extract mesh")
	}
	log.Info().Int("vertices", m.VertexCount()).Int("triangles", m.TriangleCount()).Msg("extracted mesh")

	f, err := os.Create(flagOut)
	if err != nil {
		log.Fatal().Err(err).Str("path", flagOut).Msg("could not create output file")
	}
	defer f.Close()

	if err := stl.WriteBinary(f, m); err != nil {
		log.Fatal().Err(err).Msg("could not write binary STL")
	}
	log.Info().Str("path", flagOut).Msg("wrote binary STL")
}

func parseShape(s string) (volume.Shape, error) {
	switch s {
	case "default":
		return volume.Default, nil
	case "hashx2x1":
		return volume.Hashx2x1, nil
	case "hashx5x4":
		return volume.Hashx5x4, nil
	default:
		return volume.Default, &unknownShapeError{s}
	}
}

type unknownShapeError struct{ name string }

func (e *unknownShapeError) Error() string { return "unknown shape: " + e.name }
