package block

// Capability is a set of behaviour families a kind belongs to. Capabilities may overlap, so anything that
// needs a single family must test them in a fixed order.
type Capability uint32

const (
	CapBamboo Capability = 1 << iota
	CapCake
	CapButton
	CapCrops
	CapDoor
	// CapFlowable is held by small plants that do not belong to a more specific family.
	CapFlowable
	CapNetherRoots
	CapNetherVines
	CapPressurePlate
	CapSapling
	CapTallGrass
	CapTorch
	CapWater
)

// Tag is a set of coarse material categories.
type Tag uint8

const (
	// TagDirt covers dirt, grass, podzol, mycelium, farmland and similar soils.
	TagDirt Tag = 1 << iota
	TagMud
	TagSand
)
