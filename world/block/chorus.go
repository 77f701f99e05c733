package block

var (
	// ChorusPlant connects to End Stone, chorus flowers and other chorus plants.
	ChorusPlant  = Register(Kind{Identifier: "minecraft:chorus_plant", Transparent: true, Profile: NoProfile})
	ChorusFlower = Register(Kind{Identifier: "minecraft:chorus_flower", Transparent: true, Profile: NoProfile})
)
