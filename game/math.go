package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec32ApproxEq determines whether every component of both vectors is approximately equal.
func Vec32ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a.X(), b.X()) && Float32ApproxEq(a.Y(), b.Y()) && Float32ApproxEq(a.Z(), b.Z())
}
