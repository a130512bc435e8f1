package cablefilter

import (
	"sort"

	"github.com/cadimo/pathcore/core"
)

// CableType names a caller-supplied routing category, e.g. "A", "B", "C".
type CableType string

// SystemSet is a small, order-independent set of system tags.
type SystemSet map[core.SystemTag]struct{}

// Contains reports whether sys belongs to the set.
func (s SystemSet) Contains(sys core.SystemTag) bool {
	_, ok := s[sys]
	return ok
}

// Sorted returns the set's members in a deterministic order.
func (s SystemSet) Sorted() []core.SystemTag {
	out := make([]core.SystemTag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func newSystemSet(tags ...core.SystemTag) SystemSet {
	s := make(SystemSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// CableTable is a closed, caller-configurable mapping from CableType to
// SystemSet. It is built once (DefaultCableTable or Register) and treated
// as read-only thereafter — there is no per-request mutation path.
type CableTable struct {
	allowed map[CableType]SystemSet
}

// DefaultCableTable returns the reference configuration: A→{A}, B→{B},
// C→{A,B}.
func DefaultCableTable() CableTable {
	return CableTable{allowed: map[CableType]SystemSet{
		"A": newSystemSet(core.SystemA),
		"B": newSystemSet(core.SystemB),
		"C": newSystemSet(core.SystemA, core.SystemB),
	}}
}

// Register returns a CableTable extending t with an additional cable type.
// t is not mutated; the returned table is a fresh copy.
func (t CableTable) Register(cable CableType, systems ...core.SystemTag) CableTable {
	out := CableTable{allowed: make(map[CableType]SystemSet, len(t.allowed)+1)}
	for k, v := range t.allowed {
		out.allowed[k] = v
	}
	out.allowed[cable] = newSystemSet(systems...)

	return out
}

// AllowedSystems returns the SystemSet permitted for cable, or
// ErrUnknownCable if cable has no registered entry.
func (t CableTable) AllowedSystems(cable CableType) (SystemSet, error) {
	s, ok := t.allowed[cable]
	if !ok {
		return nil, ErrUnknownCable
	}
	return s, nil
}

// Adjacency maps a node key to the tramo IDs of edges permitted for a
// given cable type. It is bidirectional and deduplicated by construction.
type Adjacency map[string][]uint64
