package block

var (
	StoneButton              = Register(Kind{Identifier: "minecraft:stone_button", Capabilities: CapButton, Transparent: true, Profile: NoProfile})
	WoodenButton             = Register(Kind{Identifier: "minecraft:wooden_button", Capabilities: CapButton, Transparent: true, Profile: NoProfile})
	PolishedBlackstoneButton = Register(Kind{
		Identifier:   "minecraft:polished_blackstone_button",
		Capabilities: CapButton,
		Transparent:  true,
		Profile:      NoProfile,
	})
)
