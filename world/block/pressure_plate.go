package block

var (
	StonePressurePlate  = Register(Kind{Identifier: "minecraft:stone_pressure_plate", Capabilities: CapPressurePlate, Transparent: true, Profile: NoProfile})
	WoodenPressurePlate = Register(Kind{Identifier: "minecraft:wooden_pressure_plate", Capabilities: CapPressurePlate, Transparent: true, Profile: NoProfile})
	// HeavyWeightedPressurePlate is the iron plate.
	HeavyWeightedPressurePlate = Register(Kind{
		Identifier:   "minecraft:heavy_weighted_pressure_plate",
		Capabilities: CapPressurePlate,
		Transparent:  true,
		Profile:      NoProfile,
	})
)
