package util

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// CubePosFromProtocolBlockPos converts a protocol.BlockPos to a cube.Pos.
func CubePosFromProtocolBlockPos(pos protocol.BlockPos) cube.Pos {
	return cube.Pos{int(pos.X()), int(pos.Y()), int(pos.Z())}
}

// ProtocolBlockPosFromCubePos converts a cube.Pos to a protocol.BlockPos.
func ProtocolBlockPosFromCubePos(pos cube.Pos) protocol.BlockPos {
	return protocol.BlockPos{int32(pos.X()), int32(pos.Y()), int32(pos.Z())}
}
