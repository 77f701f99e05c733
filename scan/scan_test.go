package scan

import (
	"context"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/support"
	"github.com/oomph-ac/blocksupport/worker"
	"github.com/oomph-ac/blocksupport/world"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/stretchr/testify/require"
)

var origin = cube.Pos{0, 64, 0}

func garden() *world.World {
	w := world.New(nil, world.DefaultRange)
	w.SetBlock(origin, block.Sand, cube.FaceDown)
	w.SetBlock(origin.Side(cube.FaceUp), block.Cactus, cube.FaceDown)
	w.SetBlock(origin.Add(cube.Pos{3, 0, 0}), block.Stone, cube.FaceDown)
	w.SetBlock(origin.Add(cube.Pos{3, 1, 0}), block.Torch, cube.FaceDown)
	// Floating lily pad.
	w.SetBlock(origin.Add(cube.Pos{-3, 5, 0}), block.LilyPad, cube.FaceDown)
	return w
}

func TestSweep(t *testing.T) {
	w := garden()
	pool := worker.NewPool(2)
	defer pool.Close()

	reports, err := Sweep(context.Background(), support.NewRegistry(nil), w, pool)
	require.NoError(t, err)
	require.Len(t, reports, 3, "blocks without a rule are skipped")
	for i := 1; i < len(reports); i++ {
		require.Negative(t, world.ComparePos(reports[i-1].Pos, reports[i].Pos))
	}

	unsupported := Unsupported(reports)
	require.Len(t, unsupported, 1)
	require.True(t, block.SameType(unsupported[0].Type, block.LilyPad))
	require.NoError(t, unsupported[0].Err)
}

func TestSweepRulePanics(t *testing.T) {
	w := garden()
	reg := support.NewRegistry(nil)
	require.NoError(t, reg.Register(func(block.Type, block.Block, cube.Face) bool {
		panic("broken rule")
	}, true, block.Cactus))

	pool := worker.NewPool(1)
	defer pool.Close()

	reports, err := Sweep(context.Background(), reg, w, pool)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	unsupported := Unsupported(reports)
	require.Len(t, unsupported, 2)
	require.True(t, block.SameType(unsupported[0].Type, block.Cactus))
	require.Error(t, unsupported[0].Err)
	require.Contains(t, unsupported[0].String(), "broken rule")
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := worker.NewPool(1)
	defer pool.Close()

	w := world.New(nil, world.DefaultRange)
	for x := range 64 {
		w.SetBlock(cube.Pos{x, 64, 0}, block.Torch, cube.FaceDown)
	}
	reports, err := Sweep(ctx, support.NewRegistry(nil), w, pool)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, len(reports), 64)
}

func TestNeighbours(t *testing.T) {
	reg := support.NewRegistry(nil)
	w := garden()
	require.Empty(t, Neighbours(reg, w, origin))

	w.SetBlock(origin, block.Stone, cube.FaceDown)
	reports := Neighbours(reg, w, origin)
	require.Len(t, reports, 1)
	require.Equal(t, origin.Side(cube.FaceUp), reports[0].Pos)
	require.False(t, reports[0].Supported)
}

func TestPlacement(t *testing.T) {
	reg := support.NewRegistry(nil)
	w := garden()

	wall := origin.Add(cube.Pos{3, 0, 0}).Side(cube.FaceSouth)
	require.True(t, Placement(reg, w, block.Ladder, wall, cube.FaceNorth))
	require.False(t, Placement(reg, w, block.Ladder, wall, cube.FaceSouth))
	require.True(t, block.IsAir(w.Block(wall)), "placement checks must not modify the world")
}
