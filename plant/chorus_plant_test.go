package plant

import (
	"math/rand/v2"
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blocksupport/game"
	"github.com/oomph-ac/blocksupport/support"
	"github.com/oomph-ac/blocksupport/world"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/stretchr/testify/require"
)

var origin = df_cube.Pos{0, 64, 0}

func TestChorusPlantOnEndStone(t *testing.T) {
	w := world.New(nil, world.DefaultRange)
	w.SetBlock(origin.Side(df_cube.FaceDown), block.EndStone, df_cube.FaceDown)
	w.SetBlock(origin, block.ChorusPlant, df_cube.FaceDown)

	c := NewChorusPlant(support.NewRegistry(nil))
	c.Resync(w.Block(origin))

	require.Equal(t, []df_cube.Face{df_cube.FaceDown}, c.Connections())
	require.True(t, c.Connected(df_cube.FaceDown))
	require.False(t, c.Connected(df_cube.FaceUp))
	require.True(t, c.CanBeSupportedAt(w.Block(origin)))

	boxes := c.CollisionBoxes()
	require.Len(t, boxes, 1)
	want := cube.Box(0.125, 0, 0.125, 0.875, 0.875, 0.875)
	require.True(t, game.BoxApproxEq(want, boxes[0]), "got %v", boxes[0])
}

func TestChorusPlantResync(t *testing.T) {
	w := world.New(nil, world.DefaultRange)
	w.SetBlock(origin, block.ChorusPlant, df_cube.FaceDown)
	w.SetBlock(origin.Side(df_cube.FaceUp), block.ChorusFlower, df_cube.FaceDown)
	w.SetBlock(origin.Side(df_cube.FaceNorth), block.ChorusPlant, df_cube.FaceDown)
	w.SetBlock(origin.Side(df_cube.FaceEast), block.Stone, df_cube.FaceDown)

	c := NewChorusPlant(support.NewRegistry(nil))
	c.Resync(w.Block(origin))
	require.ElementsMatch(t, []df_cube.Face{df_cube.FaceUp, df_cube.FaceNorth}, c.Connections())
	require.False(t, c.Connected(df_cube.FaceEast))
	require.False(t, c.CanBeSupportedAt(w.Block(origin)), "the northern plant is not rooted")

	first := c.CollisionBoxes()
	require.Len(t, first, 1)
	require.InDelta(t, 1.0, first[0].Max().Y(), 1e-5)

	w.SetBlock(origin.Side(df_cube.FaceUp), block.Air, df_cube.FaceDown)
	w.SetBlock(origin.Side(df_cube.FaceNorth), block.Air, df_cube.FaceDown)
	c.Resync(w.Block(origin))
	require.Empty(t, c.Connections())

	boxes := c.CollisionBoxes()
	require.True(t, game.BoxApproxEq(cube.Box(0.125, 0.125, 0.125, 0.875, 0.875, 0.875), boxes[0]), "got %v", boxes[0])
}

func TestFruitDrops(t *testing.T) {
	c := NewChorusPlant(support.NewRegistry(nil))
	r := rand.New(rand.NewPCG(1, 2))

	var drops int
	for range 1000 {
		n := c.FruitDrops(r)
		require.Contains(t, []int{0, 1}, n)
		drops += n
	}
	require.InDelta(t, 500, drops, 100)
}
