package support

import (
	"errors"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/world"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/stretchr/testify/require"
)

var origin = cube.Pos{0, 64, 0}

func always(block.Type, block.Block, cube.Face) bool { return true }
func never(block.Type, block.Block, cube.Face) bool  { return false }

func newWorld() *world.World {
	return world.New(nil, world.DefaultRange)
}

func TestRegistryPrecedence(t *testing.T) {
	r := NewEmptyRegistry(nil)
	w := newWorld()

	require.False(t, r.IsSupported(block.Torch, w.Block(origin), cube.FaceDown), "no rule must mean unsupported")

	require.NoError(t, r.RegisterGroup(GroupTorch, always, false))
	require.True(t, r.IsSupported(block.Torch, w.Block(origin), cube.FaceDown))

	require.NoError(t, r.Register(never, false, block.Torch))
	require.False(t, r.IsSupported(block.Torch, w.Block(origin), cube.FaceDown), "type rule must win over group rule")
	require.True(t, r.IsSupported(block.SoulTorch, w.Block(origin), cube.FaceDown), "other torches keep the group rule")

	r.Unregister(block.Torch.TypeID())
	require.True(t, r.IsSupported(block.Torch, w.Block(origin), cube.FaceDown), "group rule must apply after unregistering")
}

func TestRegistryConflicts(t *testing.T) {
	r := NewEmptyRegistry(nil)

	require.NoError(t, r.Register(always, false, block.Cactus))
	err := r.Register(never, false, block.LilyPad, block.Cactus)
	require.True(t, errors.Is(err, ErrRegistrationConflict))
	require.False(t, r.Bound(block.LilyPad.TypeID()), "a failed registration must not bind anything")

	require.NoError(t, r.Register(never, true, block.Cactus))
	require.False(t, r.IsSupported(block.Cactus, newWorld().Block(origin), cube.FaceDown))

	require.NoError(t, r.RegisterGroup(GroupCake, always, false))
	require.True(t, errors.Is(r.RegisterGroup(GroupCake, never, false), ErrRegistrationConflict))
	require.NoError(t, r.RegisterGroup(GroupCake, never, true))

	require.ErrorIs(t, r.RegisterGroup(GroupNone, always, false), ErrInvalidGroup)
	require.ErrorIs(t, r.Register(always, false), ErrNoExemplars)

	types, groups := r.Len()
	require.Equal(t, 1, types)
	require.Equal(t, 1, groups)
}

func TestUnregisterUnknown(t *testing.T) {
	r := NewRegistry(nil)
	types, _ := r.Len()
	r.Unregister(block.Stone.TypeID())
	after, _ := r.Len()
	require.Equal(t, types, after)
}

func TestClassifyGroup(t *testing.T) {
	cases := map[block.Type]Group{
		block.Stone:              GroupNone,
		block.Air:                GroupNone,
		block.Bamboo:             GroupBamboo,
		block.BambooSapling:      GroupBamboo,
		block.Cake:               GroupCake,
		block.StoneButton:        GroupButton,
		block.Wheat:              GroupCrops,
		block.IronDoor:           GroupDoor,
		block.Poppy:              GroupFlower,
		block.DeadBush:           GroupFlower,
		block.CrimsonRoots:       GroupNetherRoots,
		block.WeepingVines:       GroupNetherVines,
		block.StonePressurePlate: GroupPressurePlate,
		block.OakSapling:         GroupSapling,
		block.Fern:               GroupTallGrass,
		block.RedstoneTorch:      GroupTorch,
	}
	for b, want := range cases {
		require.Equal(t, want, ClassifyGroup(b), b.Name())
	}

	overlap := &block.Kind{Identifier: "test:overlap", Capabilities: block.CapTorch | block.CapBamboo}
	require.Equal(t, GroupBamboo, ClassifyGroup(overlap), "first group in priority order must win")
}

func TestGroupsOrder(t *testing.T) {
	groups := Groups()
	require.Len(t, groups, 12)
	require.Equal(t, GroupBamboo, groups[0])
	require.Equal(t, GroupTorch, groups[len(groups)-1])
	require.NotContains(t, groups, GroupNone)
	require.Equal(t, "pressure_plate", GroupPressurePlate.String())
}

func TestBuiltinsBound(t *testing.T) {
	r := NewRegistry(nil)
	for _, g := range Groups() {
		require.True(t, r.GroupBound(g), g.String())
	}
	for _, b := range []block.Type{block.Cactus, block.ChorusPlant, block.ChorusFlower, block.LilyPad, block.DeadBush, block.Ladder} {
		require.True(t, r.Bound(b.TypeID()), b.Name())
	}
	require.False(t, r.Bound(block.Torch.TypeID()), "torches only have a group rule")
}
