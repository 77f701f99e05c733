package world

import (
	"slices"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// DefaultRange is the vertical range of the overworld.
var DefaultRange = cube.Range{-64, 319}

type cell struct {
	t    block.Type
	face cube.Face
}

// World is a sparse voxel grid. Only non-air cells are stored, grouped per chunk column. It is safe for
// concurrent use.
type World struct {
	r      cube.Range
	chunks map[protocol.ChunkPos]map[cube.Pos]cell

	log logrus.FieldLogger

	deadlock.RWMutex
}

// New returns an empty world covering the vertical range passed.
func New(log logrus.FieldLogger, r cube.Range) *World {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &World{
		r:      r,
		chunks: make(map[protocol.ChunkPos]map[cube.Pos]cell),
		log:    log,
	}
}

// Range returns the vertical range of the world.
func (w *World) Range() cube.Range {
	return w.r
}

// Block returns the block at the position passed. Empty cells and cells outside the world range are air.
func (w *World) Block(pos cube.Pos) Block {
	b := Block{Type: block.Air, w: w, pos: pos, face: cube.FaceDown}
	if pos.OutOfBounds(w.r) {
		return b
	}

	w.RLock()
	c, ok := w.chunks[chunkPosOf(pos)][pos]
	w.RUnlock()
	if ok {
		b.Type, b.face = c.t, c.face
	}
	return b
}

// SetBlock places t at the position passed. face is the face t is attached to, which face-specific support
// rules validate. Setting air clears the cell.
func (w *World) SetBlock(pos cube.Pos, t block.Type, face cube.Face) {
	if pos.OutOfBounds(w.r) {
		w.log.Debugf("ignoring %v placed outside of world range at %v", t.Name(), pos)
		return
	}
	chunkPos := chunkPosOf(pos)

	w.Lock()
	defer w.Unlock()

	if block.IsAir(t) {
		if c, ok := w.chunks[chunkPos]; ok {
			delete(c, pos)
			if len(c) == 0 {
				delete(w.chunks, chunkPos)
			}
		}
		return
	}
	if w.chunks[chunkPos] == nil {
		w.chunks[chunkPos] = make(map[cube.Pos]cell)
	}
	w.chunks[chunkPos][pos] = cell{t: t, face: face}
}

// Len returns the amount of non-air cells in the world.
func (w *World) Len() (n int) {
	w.RLock()
	defer w.RUnlock()

	for _, c := range w.chunks {
		n += len(c)
	}
	return
}

// Blocks returns a snapshot of every non-air block in the world ordered by position (Y, then X, then Z).
func (w *World) Blocks() []Block {
	w.RLock()
	blocks := make([]Block, 0, len(w.chunks)*16)
	for _, c := range w.chunks {
		for pos, ce := range c {
			blocks = append(blocks, Block{Type: ce.t, w: w, pos: pos, face: ce.face})
		}
	}
	w.RUnlock()

	slices.SortFunc(blocks, func(a, b Block) int {
		return ComparePos(a.pos, b.pos)
	})
	return blocks
}

// Clear removes every block from the world.
func (w *World) Clear() {
	w.Lock()
	defer w.Unlock()

	for chunkPos := range w.chunks {
		delete(w.chunks, chunkPos)
	}
}

// ComparePos orders positions by Y, then X, then Z.
func ComparePos(a, b cube.Pos) int {
	for _, i := range [3]int{1, 0, 2} {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// chunkPosOf returns the chunk column the position passed belongs to.
func chunkPosOf(pos cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}
