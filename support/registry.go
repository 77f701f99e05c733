package support

import (
	"errors"
	"fmt"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/blocksupport/world/block"
	"github.com/sirupsen/logrus"
)

var (
	// ErrRegistrationConflict is returned when a rule is already bound to a type or group and override was
	// not requested.
	ErrRegistrationConflict = errors.New("support rule already registered")
	// ErrInvalidGroup is returned when a group registration does not name a group.
	ErrInvalidGroup = errors.New("group registration requires a group")
	// ErrNoExemplars is returned when a type registration lists no blocks.
	ErrNoExemplars = errors.New("type registration requires at least one block")
)

// Rule reports whether candidate may stay at the cell of at. face is the face being validated: the face the
// block is attached to for wall-mounted blocks, the growth face for vines. Rules that do not validate a
// specific face ignore it.
//
// Rules must only read the grid through at, and must finish after a handful of neighbour lookups.
type Rule func(candidate block.Type, at block.Block, face cube.Face) bool

// Registry maps block types, and as a fallback block groups, to the rule deciding whether they are supported.
// A Registry is populated during start-up and only read afterwards: it holds no lock, so Register and
// Unregister must not be called concurrently with IsSupported.
type Registry struct {
	types  map[block.TypeID]Rule
	groups map[Group]Rule

	log logrus.FieldLogger
}

// NewRegistry returns a Registry populated with the built-in rules.
func NewRegistry(log logrus.FieldLogger) *Registry {
	r := NewEmptyRegistry(log)
	registerBuiltins(r)
	r.log.Debugf("registered %d type rules and %d group rules", len(r.types), len(r.groups))
	return r
}

// NewEmptyRegistry returns a Registry without any rule.
func NewEmptyRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Registry{
		types:  make(map[block.TypeID]Rule),
		groups: make(map[Group]Rule),
		log:    log,
	}
}

// Register binds rule to the type of every exemplar passed. If a type already has a rule and override is
// false, ErrRegistrationConflict is returned and no binding is made.
func (r *Registry) Register(rule Rule, override bool, exemplars ...block.Type) error {
	if len(exemplars) == 0 {
		return ErrNoExemplars
	}
	if !override {
		for _, b := range exemplars {
			if _, ok := r.types[b.TypeID()]; ok {
				return fmt.Errorf("%w: block %s", ErrRegistrationConflict, b.Name())
			}
		}
	}

	for _, b := range exemplars {
		if _, ok := r.types[b.TypeID()]; ok {
			r.log.Debugf("overriding support rule of %s", b.Name())
		}
		r.types[b.TypeID()] = rule
	}
	return nil
}

// RegisterGroup binds rule to the group passed. If the group already has a rule and override is false,
// ErrRegistrationConflict is returned.
func (r *Registry) RegisterGroup(group Group, rule Rule, override bool) error {
	if group == GroupNone {
		return ErrInvalidGroup
	}
	if _, ok := r.groups[group]; ok {
		if !override {
			return fmt.Errorf("%w: group %v", ErrRegistrationConflict, group)
		}
		r.log.Debugf("overriding support rule of group %v", group)
	}
	r.groups[group] = rule
	return nil
}

// Unregister removes the rule bound to the type passed, if any. Group rules are never removed.
func (r *Registry) Unregister(id block.TypeID) {
	if _, ok := r.types[id]; !ok {
		return
	}
	delete(r.types, id)
	if k, ok := block.ByID(id); ok {
		r.log.Debugf("unregistered support rule of %s", k.Name())
	}
}

// Rule returns the rule IsSupported would use for candidate.
func (r *Registry) Rule(candidate block.Type) (Rule, bool) {
	if rule, ok := r.types[candidate.TypeID()]; ok {
		return rule, true
	}
	rule, ok := r.groups[ClassifyGroup(candidate)]
	return rule, ok
}

// Bound returns true if a rule is bound to the exact type passed.
func (r *Registry) Bound(id block.TypeID) bool {
	_, ok := r.types[id]
	return ok
}

// GroupBound returns true if a rule is bound to the group passed.
func (r *Registry) GroupBound(g Group) bool {
	_, ok := r.groups[g]
	return ok
}

// Len returns the amount of type rules and group rules.
func (r *Registry) Len() (types, groups int) {
	return len(r.types), len(r.groups)
}

// IsSupported reports whether candidate may stay at the cell of at, validating face for face-specific rules.
// The rule bound to the exact type of candidate is used first, then the rule of its group. Without either,
// the block is unsupported. Panics raised by a rule are not recovered.
func (r *Registry) IsSupported(candidate block.Type, at block.Block, face cube.Face) bool {
	rule, ok := r.Rule(candidate)
	if !ok {
		return false
	}
	return rule(candidate, at, face)
}
