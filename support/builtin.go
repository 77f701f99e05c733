package support

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/assert"
	"github.com/oomph-ac/blocksupport/world/block"
)

// registerBuiltins binds every built-in rule. Each type and group is bound exactly once, so a failure here is
// a programming mistake.
func registerBuiltins(r *Registry) {
	types := []struct {
		rule      Rule
		exemplars []block.Type
	}{
		{onGivenFace(fullFace), []block.Type{block.AmethystCluster, block.Ladder}},
		{onFace(cube.FaceDown, anySupport), []block.Type{block.Bed, block.Comparator, block.Repeater}},
		{onGivenFace(anySupport), []block.Type{block.Bell, block.ItemFrame}},
		{cactus, []block.Type{block.Cactus}},
		{notAirBelow, []block.Type{block.Carpet}},
		{caveVines, []block.Type{block.CaveVines}},
		{chorusFlower, []block.Type{block.ChorusFlower}},
		{chorusPlant, []block.Type{block.ChorusPlant}},
		{onFace(cube.FaceDown, centerSupport), []block.Type{block.TubeCoral, block.TubeCoralFan, block.RedstoneWire}},
		{onGivenFace(centerSupport), []block.Type{block.TubeCoralWallFan, block.Lantern, block.Lever}},
		{deadBush, []block.Type{block.DeadBush}},
		{onFace(cube.FaceUp, centerSupport), []block.Type{block.HangingRoots}},
		{typeBelow(block.SoulSand), []block.Type{block.NetherWart}},
		{dirtOrMudBelow, []block.Type{block.PinkPetals}},
		{typeBelow(block.Farmland), []block.Type{block.PitcherCrop, block.TorchflowerCrop}},
		{onFace(cube.FaceDown, fullFace), []block.Type{block.SnowLayer}},
		{onFace(cube.FaceUp, fullFace), []block.Type{block.SporeBlossom}},
		{sugarCane, []block.Type{block.SugarCane}},
		{sweetBerryBush, []block.Type{block.SweetBerryBush}},
		{waterBelow, []block.Type{block.LilyPad}},
		{witherRose, []block.Type{block.WitherRose}},
	}
	for _, t := range types {
		err := r.Register(t.rule, false, t.exemplars...)
		assert.IsTrue(err == nil, "built-in support rule: %v", err)
	}

	groups := []struct {
		group Group
		rule  Rule
	}{
		{GroupBamboo, bamboo},
		{GroupCake, notAirBelow},
		{GroupButton, onOppositeFace(edgeSupport)},
		{GroupCrops, typeBelow(block.Farmland)},
		{GroupDoor, onFace(cube.FaceDown, edgeSupport)},
		{GroupFlower, onFace(cube.FaceDown, centerSupport)},
		{GroupNetherRoots, netherRoots},
		{GroupNetherVines, netherVines},
		{GroupPressurePlate, onFace(cube.FaceDown, anySupport)},
		{GroupSapling, dirtOrMudBelow},
		{GroupTallGrass, dirtOrMudBelow},
		{GroupTorch, torch},
	}
	for _, g := range groups {
		err := r.RegisterGroup(g.group, g.rule, false)
		assert.IsTrue(err == nil, "built-in support rule: %v", err)
	}
}
