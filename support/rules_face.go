package support

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/world/block"
)

// supportCheck tests the support a neighbour offers.
type supportCheck func(s block.SupportType) bool

func anySupport(s block.SupportType) bool    { return s != block.SupportNone }
func centerSupport(s block.SupportType) bool { return s.HasCenterSupport() }
func edgeSupport(s block.SupportType) bool   { return s.HasEdgeSupport() }
func fullFace(s block.SupportType) bool      { return s == block.SupportFull }

// onFace returns a rule that checks the support offered by the neighbour in the fixed direction passed.
func onFace(face cube.Face, check supportCheck) Rule {
	return func(_ block.Type, at block.Block, _ cube.Face) bool {
		return check(at.AdjacentSupportType(face))
	}
}

// onGivenFace returns a rule that checks the support offered by the neighbour on the validated face.
func onGivenFace(check supportCheck) Rule {
	return func(_ block.Type, at block.Block, face cube.Face) bool {
		return check(at.AdjacentSupportType(face))
	}
}

// onOppositeFace returns a rule for blocks whose face points away from the block they are mounted on.
func onOppositeFace(check supportCheck) Rule {
	return func(_ block.Type, at block.Block, face cube.Face) bool {
		return check(at.AdjacentSupportType(face.Opposite()))
	}
}

// torch stands on the centre of a block below it, but needs a full face when mounted on a wall.
func torch(_ block.Type, at block.Block, face cube.Face) bool {
	if face == cube.FaceDown {
		return at.AdjacentSupportType(face).HasCenterSupport()
	}
	return at.AdjacentSupportType(face) == block.SupportFull
}

// caveVines hang from a full bottom face or from another cave vine.
func caveVines(candidate block.Type, at block.Block, _ cube.Face) bool {
	above := at.Side(cube.FaceUp)
	return above.SupportType(cube.FaceDown) == block.SupportFull || block.SameType(above, candidate)
}

// netherVines grow along face: the block behind them must offer centre support on that face or be the same
// vine.
func netherVines(candidate block.Type, at block.Block, face cube.Face) bool {
	behind := at.Side(face.Opposite())
	return behind.SupportType(face).HasCenterSupport() || block.SameType(behind, candidate)
}
