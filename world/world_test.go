package world

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/stretchr/testify/require"
)

func TestSetBlock(t *testing.T) {
	w := New(nil, DefaultRange)
	pos := cube.Pos{-17, 70, 33}

	require.True(t, block.IsAir(w.Block(pos)))

	w.SetBlock(pos, block.Torch, cube.FaceNorth)
	b := w.Block(pos)
	require.True(t, block.SameType(b, block.Torch))
	require.Equal(t, cube.FaceNorth, b.Face())
	require.Equal(t, pos, b.Pos())
	require.Equal(t, 1, w.Len())

	w.SetBlock(pos, block.Air, cube.FaceDown)
	require.True(t, block.IsAir(w.Block(pos)))
	require.Zero(t, w.Len())
	require.Empty(t, w.chunks, "empty chunk columns must be released")
}

func TestOutOfRange(t *testing.T) {
	w := New(nil, cube.Range{0, 15})

	w.SetBlock(cube.Pos{0, 16, 0}, block.Stone, cube.FaceDown)
	w.SetBlock(cube.Pos{0, -1, 0}, block.Stone, cube.FaceDown)
	require.Zero(t, w.Len())

	w.SetBlock(cube.Pos{0, 15, 0}, block.Stone, cube.FaceDown)
	require.True(t, block.SameType(w.Block(cube.Pos{0, 15, 0}), block.Stone))
	require.True(t, block.IsAir(w.Block(cube.Pos{0, 16, 0})))
}

func TestBlockSides(t *testing.T) {
	w := New(nil, DefaultRange)
	pos := cube.Pos{0, 64, 0}
	w.SetBlock(pos, block.Torch, cube.FaceDown)
	w.SetBlock(pos.Side(cube.FaceDown), block.Cauldron, cube.FaceDown)
	w.SetBlock(pos.Side(cube.FaceEast), block.Stone, cube.FaceDown)

	b := w.Block(pos)
	require.True(t, block.SameType(b.Side(cube.FaceDown), block.Cauldron))
	require.True(t, block.IsAir(b.Side(cube.FaceUp)))
	require.Equal(t, block.SupportEdge, b.AdjacentSupportType(cube.FaceDown))
	require.Equal(t, block.SupportFull, b.AdjacentSupportType(cube.FaceEast))
	require.Equal(t, block.SupportNone, b.AdjacentSupportType(cube.FaceWest))
	require.Equal(t, pos, b.Side(cube.FaceEast).Side(cube.FaceWest).Pos())
}

func TestBlocksOrder(t *testing.T) {
	w := New(nil, DefaultRange)
	positions := []cube.Pos{{40, 2, 0}, {-40, 2, 0}, {0, 1, 5}, {0, 1, -5}, {-100, 0, 100}}
	for _, pos := range positions {
		w.SetBlock(pos, block.Stone, cube.FaceDown)
	}

	var got []cube.Pos
	for _, b := range w.Blocks() {
		got = append(got, b.Pos())
	}
	require.Equal(t, []cube.Pos{{-100, 0, 100}, {0, 1, -5}, {0, 1, 5}, {-40, 2, 0}, {40, 2, 0}}, got)

	w.Clear()
	require.Zero(t, w.Len())
	require.Empty(t, w.Blocks())
}

func TestChunkPosOf(t *testing.T) {
	require.Equal(t, protocol.ChunkPos{0, 0}, chunkPosOf(cube.Pos{15, 0, 15}))
	require.Equal(t, protocol.ChunkPos{-1, 1}, chunkPosOf(cube.Pos{-1, 0, 16}))
	require.Equal(t, protocol.ChunkPos{-2, -1}, chunkPosOf(cube.Pos{-17, 0, -16}))
}
