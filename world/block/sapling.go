package block

var (
	OakSapling     = Register(Kind{Identifier: "minecraft:oak_sapling", Capabilities: CapSapling, Transparent: true, Profile: NoProfile})
	SpruceSapling  = Register(Kind{Identifier: "minecraft:spruce_sapling", Capabilities: CapSapling, Transparent: true, Profile: NoProfile})
	BirchSapling   = Register(Kind{Identifier: "minecraft:birch_sapling", Capabilities: CapSapling, Transparent: true, Profile: NoProfile})
	JungleSapling  = Register(Kind{Identifier: "minecraft:jungle_sapling", Capabilities: CapSapling, Transparent: true, Profile: NoProfile})
	AcaciaSapling  = Register(Kind{Identifier: "minecraft:acacia_sapling", Capabilities: CapSapling, Transparent: true, Profile: NoProfile})
	DarkOakSapling = Register(Kind{
		Identifier:   "minecraft:dark_oak_sapling",
		Capabilities: CapSapling,
		Transparent:  true,
		Profile:      NoProfile,
	})
)
