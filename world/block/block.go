package block

import (
	"github.com/df-mc/dragonfly/server/block/cube"
)

// TypeID identifies a kind of block. It is derived from the block identifier, so it is stable between
// processes and unique per kind.
type TypeID uint64

// Type describes a kind of block independently of where it is placed. The candidate passed to a support
// rule is a Type.
type Type interface {
	// TypeID returns the identity of the kind.
	TypeID() TypeID
	// Name returns the namespaced identifier of the kind, e.g. "minecraft:cactus".
	Name() string
	// Has returns true if the kind has all capabilities in c.
	Has(c Capability) bool
	// HasTag returns true if the kind carries the material tag t.
	HasTag(t Tag) bool
	// Solid returns true if the kind obstructs neighbouring blocks such as cactus.
	Solid() bool
	// SupportType returns the support the given face of the kind offers to whatever rests against it.
	SupportType(face cube.Face) SupportType
}

// Block is a Type occupying a cell of the voxel grid. Rules only read the grid through this interface.
type Block interface {
	Type
	// Pos returns the position of the cell.
	Pos() cube.Pos
	// Side returns the block next to this one in the direction passed. Empty cells are returned as Air.
	Side(face cube.Face) Block
	// AdjacentSupportType returns the support that the neighbour in the direction passed offers back
	// towards this block: Side(face).SupportType(face.Opposite()).
	AdjacentSupportType(face cube.Face) SupportType
}

// SameType returns true if a and b are the same kind of block.
func SameType(a, b Type) bool {
	return a.TypeID() == b.TypeID()
}

// IsAir returns true if t is the empty sentinel.
func IsAir(t Type) bool {
	return t.TypeID() == Air.TypeID()
}

// Is returns true if t is any of the kinds passed.
func Is(t Type, kinds ...Type) bool {
	for _, k := range kinds {
		if SameType(t, k) {
			return true
		}
	}
	return false
}
