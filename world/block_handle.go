package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/world/block"
)

// Block is a read-only handle to a cell of a World. It implements block.Block.
type Block struct {
	block.Type

	w    *World
	pos  cube.Pos
	face cube.Face
}

// Pos ...
func (b Block) Pos() cube.Pos {
	return b.pos
}

// Face returns the face the block is attached to.
func (b Block) Face() cube.Face {
	return b.face
}

// Side ...
func (b Block) Side(face cube.Face) block.Block {
	return b.w.Block(b.pos.Side(face))
}

// AdjacentSupportType ...
func (b Block) AdjacentSupportType(face cube.Face) block.SupportType {
	return b.Side(face).SupportType(face.Opposite())
}
