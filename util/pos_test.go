package util

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/stretchr/testify/require"
)

func TestPosConversion(t *testing.T) {
	pos := cube.Pos{-3, 70, 1 << 20}
	bp := ProtocolBlockPosFromCubePos(pos)
	require.Equal(t, protocol.BlockPos{-3, 70, 1 << 20}, bp)
	require.Equal(t, pos, CubePosFromProtocolBlockPos(bp))
}
