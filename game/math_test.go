package game

import (
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestApproxEq(t *testing.T) {
	require.True(t, Float32ApproxEq(0.1+0.2, 0.3))
	require.False(t, Float32ApproxEq(0.3, 0.3001))
	require.True(t, Vec32ApproxEq(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3.000001}))
}

func TestBoxConversion(t *testing.T) {
	bb := DFBoxToCubeBox(df_cube.Box(0, 0, 0, 1, 0.5, 1).ExtendTowards(df_cube.FaceEast, -0.25))
	require.True(t, BoxApproxEq(cube.Box(0, 0, 0, 0.75, 0.5, 1), bb), "got %v", bb)
	require.False(t, BoxApproxEq(cube.Box(0, 0, 0, 1, 0.5, 1), bb))
}
