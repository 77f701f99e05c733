package block

import (
	"slices"
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/assert"
	"github.com/zeebo/xxh3"
)

var (
	kindsByName = make(map[string]*Kind)
	kindsByID   = make(map[TypeID]*Kind)
)

// Profile holds the SupportType of each face of a kind, indexed by cube.Face.
type Profile [6]SupportType

var (
	// FullProfile is the profile of a full cube.
	FullProfile = Uniform(SupportFull)
	// NoProfile is the profile of air and of plants.
	NoProfile = Uniform(SupportNone)
)

// Uniform returns a profile with every face set to s.
func Uniform(s SupportType) (p Profile) {
	for i := range p {
		p[i] = s
	}
	return
}

// With returns a copy of the profile with face set to s.
func (p Profile) With(face cube.Face, s SupportType) Profile {
	p[face] = s
	return p
}

// Kind is the Type implementation used for every block in the catalog.
type Kind struct {
	// Identifier is the namespaced name, e.g. "minecraft:end_stone".
	Identifier string
	// Capabilities lists the behaviour families of the kind.
	Capabilities Capability
	// Tags lists the material categories of the kind.
	Tags Tag
	// Transparent kinds do not obstruct neighbours.
	Transparent bool
	// Profile is the support offered by each face.
	Profile Profile

	id TypeID
}

// TypeID ...
func (k *Kind) TypeID() TypeID {
	return k.id
}

// Name ...
func (k *Kind) Name() string {
	return k.Identifier
}

// Has ...
func (k *Kind) Has(c Capability) bool {
	return c != 0 && k.Capabilities&c == c
}

// HasTag ...
func (k *Kind) HasTag(t Tag) bool {
	return t != 0 && k.Tags&t == t
}

// Solid ...
func (k *Kind) Solid() bool {
	return !k.Transparent
}

// SupportType ...
func (k *Kind) SupportType(face cube.Face) SupportType {
	if int(face) >= len(k.Profile) {
		return SupportNone
	}
	return k.Profile[face]
}

func (k *Kind) String() string {
	return k.Identifier
}

// Register adds a kind to the catalog and assigns its TypeID. It panics if a kind with the same identifier
// already exists.
func Register(k Kind) *Kind {
	_, exists := kindsByName[k.Identifier]
	assert.IsTrue(!exists, "block %s registered twice", k.Identifier)
	assert.IsTrue(strings.Contains(k.Identifier, ":"), "block identifier %q has no namespace", k.Identifier)

	k.id = TypeID(xxh3.HashString(k.Identifier))
	_, collides := kindsByID[k.id]
	assert.IsTrue(!collides, "type id of %s collides with another block", k.Identifier)

	ptr := &k
	kindsByName[k.Identifier] = ptr
	kindsByID[k.id] = ptr
	return ptr
}

// ByName looks up a kind by its identifier. The "minecraft:" namespace may be omitted.
func ByName(name string) (*Kind, bool) {
	if !strings.Contains(name, ":") {
		name = "minecraft:" + name
	}
	k, ok := kindsByName[name]
	return k, ok
}

// ByID looks up a kind by its TypeID.
func ByID(id TypeID) (*Kind, bool) {
	k, ok := kindsByID[id]
	return k, ok
}

// All returns every registered kind sorted by identifier.
func All() []*Kind {
	kinds := make([]*Kind, 0, len(kindsByName))
	for _, k := range kindsByName {
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, func(a, b *Kind) int {
		return strings.Compare(a.Identifier, b.Identifier)
	})
	return kinds
}
