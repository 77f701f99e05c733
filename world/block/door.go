package block

var (
	// OakDoor and IronDoor stand on the rim of the block below them.
	OakDoor  = Register(Kind{Identifier: "minecraft:wooden_door", Capabilities: CapDoor, Transparent: true, Profile: NoProfile})
	IronDoor = Register(Kind{Identifier: "minecraft:iron_door", Capabilities: CapDoor, Transparent: true, Profile: NoProfile})
)
