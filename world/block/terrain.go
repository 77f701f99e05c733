package block

import "github.com/df-mc/dragonfly/server/block/cube"

var (
	// Air is returned for every empty cell of the grid.
	Air = Register(Kind{Identifier: "minecraft:air", Transparent: true, Profile: NoProfile})

	Stone       = Register(Kind{Identifier: "minecraft:stone", Profile: FullProfile})
	Cobblestone = Register(Kind{Identifier: "minecraft:cobblestone", Profile: FullProfile})
	Glass       = Register(Kind{Identifier: "minecraft:glass", Profile: FullProfile})
	Gravel      = Register(Kind{Identifier: "minecraft:gravel", Profile: FullProfile})
	EndStone    = Register(Kind{Identifier: "minecraft:end_stone", Profile: FullProfile})
	Netherrack  = Register(Kind{Identifier: "minecraft:netherrack", Profile: FullProfile})
	SoulSand    = Register(Kind{Identifier: "minecraft:soul_sand", Profile: FullProfile})
	SoulSoil    = Register(Kind{Identifier: "minecraft:soul_soil", Profile: FullProfile})

	HardenedClay = Register(Kind{Identifier: "minecraft:hardened_clay", Profile: FullProfile})
	StainedClay  = Register(Kind{Identifier: "minecraft:stained_hardened_clay", Profile: FullProfile})
)

// Soils.
var (
	Dirt       = Register(Kind{Identifier: "minecraft:dirt", Tags: TagDirt, Profile: FullProfile})
	CoarseDirt = Register(Kind{Identifier: "minecraft:coarse_dirt", Tags: TagDirt, Profile: FullProfile})
	RootedDirt = Register(Kind{Identifier: "minecraft:dirt_with_roots", Tags: TagDirt, Profile: FullProfile})
	Grass      = Register(Kind{Identifier: "minecraft:grass_block", Tags: TagDirt, Profile: FullProfile})
	Podzol     = Register(Kind{Identifier: "minecraft:podzol", Tags: TagDirt, Profile: FullProfile})
	Mycelium   = Register(Kind{Identifier: "minecraft:mycelium", Tags: TagDirt, Profile: FullProfile})
	// Farmland carries the dirt tag, which is why some plants exclude it explicitly.
	Farmland = Register(Kind{Identifier: "minecraft:farmland", Tags: TagDirt, Transparent: true, Profile: FullProfile})

	Mud                = Register(Kind{Identifier: "minecraft:mud", Tags: TagMud, Profile: FullProfile})
	MuddyMangroveRoots = Register(Kind{Identifier: "minecraft:muddy_mangrove_roots", Tags: TagMud, Profile: FullProfile})

	Sand    = Register(Kind{Identifier: "minecraft:sand", Tags: TagSand, Profile: FullProfile})
	RedSand = Register(Kind{Identifier: "minecraft:red_sand", Tags: TagSand, Profile: FullProfile})
)

// Liquids.
var (
	Water        = Register(Kind{Identifier: "minecraft:water", Capabilities: CapWater, Transparent: true, Profile: NoProfile})
	FlowingWater = Register(Kind{Identifier: "minecraft:flowing_water", Capabilities: CapWater, Transparent: true, Profile: NoProfile})
	Lava         = Register(Kind{Identifier: "minecraft:lava", Transparent: true, Profile: NoProfile})
)

// Partial blocks with uneven faces.
var (
	// StoneSlab is a bottom slab: only its lower face is full.
	StoneSlab = Register(Kind{Identifier: "minecraft:stone_slab", Profile: NoProfile.With(cube.FaceDown, SupportFull)})
	// UpperStoneSlab is a top slab: only its upper face is full.
	UpperStoneSlab = Register(Kind{Identifier: "minecraft:stone_slab_top", Profile: NoProfile.With(cube.FaceUp, SupportFull)})
	// Cauldron only carries blocks on its rim.
	Cauldron = Register(Kind{Identifier: "minecraft:cauldron", Profile: NoProfile.With(cube.FaceUp, SupportEdge)})
	Hopper   = Register(Kind{Identifier: "minecraft:hopper", Profile: NoProfile.With(cube.FaceUp, SupportFull).With(cube.FaceDown, SupportCenter)})
)
