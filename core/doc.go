// Package core defines the tagged 3D graph that every other component in
// pathcore builds on: Point/Node/Edge, the system-tag vocabulary, and the
// TramoMap that assigns every undirected edge a stable integer identity.
//
// A Graph is built once from a loaded description (LoadTaggedGraph) and is
// read-only for the remainder of its lifetime: no method on Graph mutates
// its node/edge catalog after construction. This lets a single loaded Graph
// be shared across concurrent searches, each of which layers its own
// per-search overlay (see package resolver) rather than touching the base.
//
// Canonical keys are preserved verbatim from the input text — a Point never
// reformats the caller's floating point literals, because the TramoMap and
// any persisted forbidden-section file key off of the exact string form.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrMalformedGraph is the umbrella error for structurally invalid input.
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrMissingSystemTag indicates a node or edge was loaded without a system tag.
	ErrMissingSystemTag = fmt.Errorf("%w: missing system tag", ErrMalformedGraph)

	// ErrDanglingEdge indicates an edge referenced a node key absent from the graph.
	ErrDanglingEdge = fmt.Errorf("%w: edge endpoint not found among nodes", ErrMalformedGraph)

	// ErrDuplicateTramoID indicates the same tramo ID was assigned to two edges.
	ErrDuplicateTramoID = fmt.Errorf("%w: duplicate tramo ID", ErrMalformedGraph)

	// ErrTramoMapMismatch indicates the supplied tramo map does not cover edges 1:1.
	ErrTramoMapMismatch = fmt.Errorf("%w: tramo map does not cover edges exactly", ErrMalformedGraph)

	// ErrEmptyKey indicates an empty canonical node key.
	ErrEmptyKey = fmt.Errorf("%w: empty node key", ErrMalformedGraph)

	// ErrDuplicateNode indicates the same canonical key was loaded twice.
	ErrDuplicateNode = fmt.Errorf("%w: duplicate node key", ErrMalformedGraph)

	// ErrNodeNotFound indicates a lookup referenced a node key absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrTramoNotFound indicates a lookup referenced a tramo ID absent from the graph.
	ErrTramoNotFound = errors.New("core: tramo ID not found")
)
