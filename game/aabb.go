package game

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
)

// DFBoxToCubeBox converts a dragonfly bounding box to a float32-cube bounding box.
func DFBoxToCubeBox(b df_cube.BBox) cube.BBox {
	return cube.Box(
		float32(b.Min().X()), float32(b.Min().Y()), float32(b.Min().Z()),
		float32(b.Max().X()), float32(b.Max().Y()), float32(b.Max().Z()),
	)
}

// BoxApproxEq returns true if the corners of both boxes are within 1e-5 of each other.
func BoxApproxEq(a, b cube.BBox) bool {
	return Vec32ApproxEq(a.Min(), b.Min()) && Vec32ApproxEq(a.Max(), b.Max())
}
