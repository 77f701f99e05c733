package world

import (
	"errors"
	"fmt"
	"os"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/util"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/pelletier/go-toml/v2"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// ErrUnknownBlock is returned when a scene names a block that is not in the catalog.
var ErrUnknownBlock = errors.New("unknown block")

// Scene is the on-disk description of a set of blocks:
//
//	[[block]]
//	name = "minecraft:torch"
//	pos = [0, 65, 0]
//	face = "north"
type Scene struct {
	Blocks []SceneBlock `toml:"block"`
}

// SceneBlock is a single entry of a Scene.
type SceneBlock struct {
	Name string            `toml:"name"`
	Pos  protocol.BlockPos `toml:"pos"`
	Face string            `toml:"face,omitempty"`
}

// DecodeScene parses a TOML scene.
func DecodeScene(data []byte) (Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("error decoding scene: %w", err)
	}
	return s, nil
}

// LoadScene reads and parses the TOML scene at path.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("error reading scene: %w", err)
	}
	return DecodeScene(data)
}

// Apply places every block of the scene in the world. Nothing is placed if any entry is invalid.
func (s Scene) Apply(w *World) error {
	type placement struct {
		pos  cube.Pos
		t    block.Type
		face cube.Face
	}
	placements := make([]placement, 0, len(s.Blocks))
	for i, sb := range s.Blocks {
		t, ok := block.ByName(sb.Name)
		if !ok {
			return fmt.Errorf("scene block #%d: %w: %q", i, ErrUnknownBlock, sb.Name)
		}
		face := cube.FaceDown
		if sb.Face != "" {
			if face, ok = block.FaceByName(sb.Face); !ok {
				return fmt.Errorf("scene block #%d: invalid face %q", i, sb.Face)
			}
		}
		placements = append(placements, placement{pos: util.CubePosFromProtocolBlockPos(sb.Pos), t: t, face: face})
	}

	for _, p := range placements {
		w.SetBlock(p.pos, p.t, p.face)
	}
	w.log.Debugf("applied scene with %d blocks", len(placements))
	return nil
}

// Add appends a block to the scene.
func (s *Scene) Add(pos cube.Pos, t block.Type, face cube.Face) {
	s.Blocks = append(s.Blocks, SceneBlock{Name: t.Name(), Pos: util.ProtocolBlockPosFromCubePos(pos), Face: face.String()})
}

// Encode returns the TOML representation of the scene.
func (s Scene) Encode() ([]byte, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error encoding scene: %w", err)
	}
	return data, nil
}
