package block

var (
	TubeCoral    = Register(Kind{Identifier: "minecraft:tube_coral", Transparent: true, Profile: NoProfile})
	TubeCoralFan = Register(Kind{Identifier: "minecraft:tube_coral_fan", Transparent: true, Profile: NoProfile})
	// TubeCoralWallFan hangs on the side of a block.
	TubeCoralWallFan = Register(Kind{Identifier: "minecraft:tube_coral_wall_fan", Transparent: true, Profile: NoProfile})
)
