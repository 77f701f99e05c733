package blockmodel

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/blocksupport/game"
	"github.com/oomph-ac/blocksupport/world/block"
)

// ChorusInset is how far an unconnected face of a chorus plant is trimmed towards its centre.
const ChorusInset = 2.0 / 16.0

// Chorus is the model of a chorus plant: a full cube trimmed inwards on every face that has no connection.
type Chorus struct {
	Connections block.FaceSet
}

// BBox returns the collision boxes of the model relative to the origin of its cell.
func (c Chorus) BBox() []cube.BBox {
	bb := df_cube.Box(0, 0, 0, 1, 1, 1)
	for _, f := range df_cube.Faces() {
		if !c.Connections.Has(f) {
			bb = bb.ExtendTowards(f, -ChorusInset)
		}
	}
	return []cube.BBox{game.DFBoxToCubeBox(bb)}
}
