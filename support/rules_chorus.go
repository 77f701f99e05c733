package support

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/world/block"
)

// chorusFlower rests on End Stone or a chorus plant. Otherwise it must have exactly one chorus plant next to
// it and air on the other horizontal sides.
func chorusFlower(_ block.Type, at block.Block, _ cube.Face) bool {
	if block.Is(at.Side(cube.FaceDown), block.EndStone, block.ChorusPlant) {
		return true
	}

	plantAdjacent := false
	for _, f := range block.FacesAroundAxis(cube.Y) {
		side := at.Side(f)
		switch {
		case block.SameType(side, block.ChorusPlant):
			if plantAdjacent {
				return false
			}
			plantAdjacent = true
		case !block.IsAir(side):
			return false
		}
	}
	return plantAdjacent
}

// chorusPlant rests on End Stone or another chorus plant. A plant with air above or below may instead branch
// off a horizontal chorus plant that itself stands on a valid block. Only direct neighbours and the blocks
// below them are inspected.
func chorusPlant(candidate block.Type, at block.Block, _ cube.Face) bool {
	canBeSupportedBy := func(b block.Type) bool {
		return block.SameType(b, candidate) || block.SameType(b, block.EndStone)
	}

	down := at.Side(cube.FaceDown)
	verticalAir := block.IsAir(down) || block.IsAir(at.Side(cube.FaceUp))

	for _, f := range block.FacesAroundAxis(cube.Y) {
		side := at.Side(f)
		if !block.SameType(side, block.ChorusPlant) {
			continue
		}
		if !verticalAir {
			return false
		}
		if canBeSupportedBy(side.Side(cube.FaceDown)) {
			return true
		}
	}
	return canBeSupportedBy(down)
}
