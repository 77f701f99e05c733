package support

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/blocksupport/world/block"
)

// Group is a coarse family of blocks derived from their capabilities. A group rule is only used when no rule
// is bound to the exact type of a block.
type Group uint8

const (
	GroupNone Group = iota
	GroupBamboo
	GroupCake
	GroupButton
	GroupCrops
	GroupDoor
	GroupFlower
	GroupNetherRoots
	GroupNetherVines
	GroupPressurePlate
	GroupSapling
	GroupTallGrass
	GroupTorch
)

// groupCapabilities maps every group to the capability that places a block in it. The order of the map is
// the priority order of ClassifyGroup: capabilities may overlap and the first match wins.
var groupCapabilities = func() *orderedmap.OrderedMap[Group, block.Capability] {
	m := orderedmap.NewOrderedMap[Group, block.Capability]()
	m.Set(GroupBamboo, block.CapBamboo)
	m.Set(GroupCake, block.CapCake)
	m.Set(GroupButton, block.CapButton)
	m.Set(GroupCrops, block.CapCrops)
	m.Set(GroupDoor, block.CapDoor)
	m.Set(GroupFlower, block.CapFlowable)
	m.Set(GroupNetherRoots, block.CapNetherRoots)
	m.Set(GroupNetherVines, block.CapNetherVines)
	m.Set(GroupPressurePlate, block.CapPressurePlate)
	m.Set(GroupSapling, block.CapSapling)
	m.Set(GroupTallGrass, block.CapTallGrass)
	m.Set(GroupTorch, block.CapTorch)
	return m
}()

// ClassifyGroup returns the group of the block passed, or GroupNone if it belongs to none. It only looks at
// capabilities, never at the TypeID.
func ClassifyGroup(t block.Type) Group {
	for el := groupCapabilities.Front(); el != nil; el = el.Next() {
		if t.Has(el.Value) {
			return el.Key
		}
	}
	return GroupNone
}

// Groups returns every group except GroupNone in priority order.
func Groups() []Group {
	groups := make([]Group, 0, groupCapabilities.Len())
	for el := groupCapabilities.Front(); el != nil; el = el.Next() {
		groups = append(groups, el.Key)
	}
	return groups
}

func (g Group) String() string {
	switch g {
	case GroupNone:
		return "none"
	case GroupBamboo:
		return "bamboo"
	case GroupCake:
		return "cake"
	case GroupButton:
		return "button"
	case GroupCrops:
		return "crops"
	case GroupDoor:
		return "door"
	case GroupFlower:
		return "flower"
	case GroupNetherRoots:
		return "nether_roots"
	case GroupNetherVines:
		return "nether_vines"
	case GroupPressurePlate:
		return "pressure_plate"
	case GroupSapling:
		return "sapling"
	case GroupTallGrass:
		return "tall_grass"
	case GroupTorch:
		return "torch"
	}
	return fmt.Sprintf("Group(%d)", uint8(g))
}
