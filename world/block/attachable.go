package block

import "github.com/df-mc/dragonfly/server/block/cube"

var (
	Bed       = Register(Kind{Identifier: "minecraft:bed", Transparent: true, Profile: NoProfile})
	Bell      = Register(Kind{Identifier: "minecraft:bell", Transparent: true, Profile: NoProfile})
	Carpet    = Register(Kind{Identifier: "minecraft:white_carpet", Transparent: true, Profile: NoProfile})
	ItemFrame = Register(Kind{Identifier: "minecraft:frame", Transparent: true, Profile: NoProfile})
	Ladder    = Register(Kind{Identifier: "minecraft:ladder", Transparent: true, Profile: NoProfile})
	Lantern   = Register(Kind{Identifier: "minecraft:lantern", Transparent: true, Profile: NoProfile})
	Cake      = Register(Kind{Identifier: "minecraft:cake", Capabilities: CapCake, Transparent: true, Profile: NoProfile})
	// SnowLayer rests its full bottom on the block below.
	SnowLayer = Register(Kind{Identifier: "minecraft:snow_layer", Transparent: true, Profile: NoProfile.With(cube.FaceDown, SupportFull)})
)
