package plant

import (
	"math/rand/v2"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blocksupport/support"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/oomph-ac/blocksupport/world/blockmodel"
)

// ChorusPlant is a chorus plant placed in the grid. Its connections are derived from its neighbours every time
// it is resynchronised and drive its collision boxes. A ChorusPlant is owned by a single caller and is not
// safe for concurrent use.
type ChorusPlant struct {
	reg *support.Registry

	connections block.FaceSet
	boxes       []cube.BBox
}

// NewChorusPlant returns a chorus plant without connections that validates its placement through reg.
func NewChorusPlant(reg *support.Registry) *ChorusPlant {
	return &ChorusPlant{reg: reg}
}

// Type ...
func (c *ChorusPlant) Type() block.Type {
	return block.ChorusPlant
}

// Resync rebuilds the connections of the plant from the neighbours of at. A face is connected if the block
// on it is End Stone, a chorus flower or a chorus plant.
func (c *ChorusPlant) Resync(at block.Block) {
	c.boxes = nil
	for _, f := range df_cube.Faces() {
		if block.Is(at.Side(f), block.EndStone, block.ChorusFlower, c.Type()) {
			c.connections = c.connections.Add(f)
		} else {
			c.connections = c.connections.Remove(f)
		}
	}
}

// Connected returns true if the plant connects to the block on the face passed.
func (c *ChorusPlant) Connected(face df_cube.Face) bool {
	return c.connections.Has(face)
}

// Connections returns the connected faces of the plant.
func (c *ChorusPlant) Connections() []df_cube.Face {
	return c.connections.Faces()
}

// CollisionBoxes returns the collision boxes of the plant relative to its cell. They are computed on first
// use after a Resync.
func (c *ChorusPlant) CollisionBoxes() []cube.BBox {
	if c.boxes == nil {
		c.boxes = blockmodel.Chorus{Connections: c.connections}.BBox()
	}
	return c.boxes
}

// CanBeSupportedAt returns true if a chorus plant may stay at the cell of at.
func (c *ChorusPlant) CanBeSupportedAt(at block.Block) bool {
	return c.reg.IsSupported(c.Type(), at, df_cube.FaceDown)
}

// FruitDrops returns the amount of chorus fruit dropped when the plant is broken: one half of the time.
func (c *ChorusPlant) FruitDrops(r *rand.Rand) int {
	if r.IntN(2) == 1 {
		return 1
	}
	return 0
}
