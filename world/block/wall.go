package block

var (
	CobblestoneWall = Register(Kind{Identifier: "minecraft:cobblestone_wall", Profile: postProfile})
	// IronBars and glass panes connect sideways but only carry blocks on their centre.
	IronBars  = Register(Kind{Identifier: "minecraft:iron_bars", Profile: postProfile})
	GlassPane = Register(Kind{Identifier: "minecraft:glass_pane", Profile: postProfile})
)
