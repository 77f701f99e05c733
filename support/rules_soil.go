package support

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/samber/lo"
)

func dirtOrMud(b block.Type) bool {
	return b.HasTag(block.TagDirt) || b.HasTag(block.TagMud)
}

// typeBelow returns a rule that requires one of the kinds passed directly below.
func typeBelow(kinds ...block.Type) Rule {
	return func(_ block.Type, at block.Block, _ cube.Face) bool {
		return block.Is(at.Side(cube.FaceDown), kinds...)
	}
}

func notAirBelow(_ block.Type, at block.Block, _ cube.Face) bool {
	return !block.IsAir(at.Side(cube.FaceDown))
}

func waterBelow(_ block.Type, at block.Block, _ cube.Face) bool {
	return at.Side(cube.FaceDown).Has(block.CapWater)
}

func dirtOrMudBelow(_ block.Type, at block.Block, _ cube.Face) bool {
	return dirtOrMud(at.Side(cube.FaceDown))
}

func bamboo(candidate block.Type, at block.Block, _ cube.Face) bool {
	below := at.Side(cube.FaceDown)
	return block.SameType(below, candidate) ||
		block.SameType(below, block.Gravel) ||
		dirtOrMud(below) ||
		below.HasTag(block.TagSand)
}

// cactus needs sand or another cactus below and nothing solid on any horizontal side.
func cactus(candidate block.Type, at block.Block, _ cube.Face) bool {
	below := at.Side(cube.FaceDown)
	if !block.SameType(below, candidate) && !below.HasTag(block.TagSand) {
		return false
	}
	return !lo.SomeBy(cube.HorizontalFaces(), func(f cube.Face) bool {
		return at.Side(f).Solid()
	})
}

func deadBush(_ block.Type, at block.Block, _ cube.Face) bool {
	below := at.Side(cube.FaceDown)
	if below.HasTag(block.TagSand) || below.HasTag(block.TagMud) {
		return true
	}
	// The dirt tag also covers farmland, so the soils are listed explicitly.
	return block.Is(below, block.Podzol, block.Mycelium, block.Dirt, block.Grass, block.HardenedClay, block.StainedClay)
}

func netherRoots(_ block.Type, at block.Block, _ cube.Face) bool {
	below := at.Side(cube.FaceDown)
	return dirtOrMud(below) || block.SameType(below, block.SoulSoil)
}

func sugarCane(candidate block.Type, at block.Block, _ cube.Face) bool {
	below := at.Side(cube.FaceDown)
	return block.SameType(below, candidate) || dirtOrMud(below) || below.HasTag(block.TagSand)
}

// sweetBerryBush grows on dirt and mud, except farmland.
func sweetBerryBush(_ block.Type, at block.Block, _ cube.Face) bool {
	below := at.Side(cube.FaceDown)
	return !block.SameType(below, block.Farmland) && dirtOrMud(below)
}

func witherRose(_ block.Type, at block.Block, _ cube.Face) bool {
	below := at.Side(cube.FaceDown)
	return dirtOrMud(below) || block.Is(below, block.Netherrack, block.SoulSand, block.SoulSoil)
}
