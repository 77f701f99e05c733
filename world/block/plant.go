package block

// plant returns a transparent kind with no support on any face.
func plant(identifier string, caps Capability) *Kind {
	return Register(Kind{Identifier: identifier, Capabilities: caps, Transparent: true, Profile: NoProfile})
}

var (
	Bamboo         = plant("minecraft:bamboo", CapBamboo)
	BambooSapling  = plant("minecraft:bamboo_sapling", CapBamboo)
	SugarCane      = plant("minecraft:reeds", 0)
	SweetBerryBush = plant("minecraft:sweet_berry_bush", 0)
	LilyPad        = plant("minecraft:waterlily", 0)
	NetherWart     = plant("minecraft:nether_wart", 0)
	PinkPetals     = plant("minecraft:pink_petals", 0)

	// DeadBush is flowable but has its own soil requirements.
	DeadBush   = plant("minecraft:deadbush", CapFlowable)
	Dandelion  = plant("minecraft:yellow_flower", CapFlowable)
	Poppy      = plant("minecraft:poppy", CapFlowable)
	Cornflower = plant("minecraft:cornflower", CapFlowable)
	WitherRose = plant("minecraft:wither_rose", CapFlowable)

	ShortGrass = plant("minecraft:short_grass", CapTallGrass)
	Fern       = plant("minecraft:fern", CapTallGrass)

	CrimsonRoots = plant("minecraft:crimson_roots", CapNetherRoots)
	WarpedRoots  = plant("minecraft:warped_roots", CapNetherRoots)
	// WeepingVines grow downwards, TwistingVines grow upwards.
	WeepingVines  = plant("minecraft:weeping_vines", CapNetherVines)
	TwistingVines = plant("minecraft:twisting_vines", CapNetherVines)

	CaveVines       = plant("minecraft:cave_vines", 0)
	HangingRoots    = plant("minecraft:hanging_roots", 0)
	SporeBlossom    = plant("minecraft:spore_blossom", 0)
	AmethystCluster = plant("minecraft:amethyst_cluster", 0)
)

// Crops.
var (
	Wheat    = plant("minecraft:wheat", CapCrops)
	Carrots  = plant("minecraft:carrots", CapCrops)
	Potatoes = plant("minecraft:potatoes", CapCrops)
	Beetroot = plant("minecraft:beetroot", CapCrops)

	PitcherCrop     = plant("minecraft:pitcher_crop", 0)
	TorchflowerCrop = plant("minecraft:torchflower_crop", 0)
)

// Cactus obstructs its neighbours even though it does not carry anything on its sides.
var Cactus = Register(Kind{Identifier: "minecraft:cactus", Profile: NoProfile})
