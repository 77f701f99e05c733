package block

import "github.com/df-mc/dragonfly/server/block/cube"

// diodeProfile is the profile of repeaters and comparators: their flat bottom is full.
var diodeProfile = NoProfile.With(cube.FaceDown, SupportFull)

var (
	Comparator   = Register(Kind{Identifier: "minecraft:unpowered_comparator", Transparent: true, Profile: diodeProfile})
	Repeater     = Register(Kind{Identifier: "minecraft:unpowered_repeater", Transparent: true, Profile: diodeProfile})
	RedstoneWire = Register(Kind{Identifier: "minecraft:redstone_wire", Transparent: true, Profile: NoProfile})
	Lever        = Register(Kind{Identifier: "minecraft:lever", Transparent: true, Profile: NoProfile})

	Torch         = Register(Kind{Identifier: "minecraft:torch", Capabilities: CapTorch, Transparent: true, Profile: NoProfile})
	SoulTorch     = Register(Kind{Identifier: "minecraft:soul_torch", Capabilities: CapTorch, Transparent: true, Profile: NoProfile})
	RedstoneTorch = Register(Kind{Identifier: "minecraft:redstone_torch", Capabilities: CapTorch, Transparent: true, Profile: NoProfile})
)
