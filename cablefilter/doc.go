// Package cablefilter maps a cable type to the set of systems it may
// traverse and builds the filtered, bidirectional adjacency that every
// downstream search walks.
//
// The cable → systems table is closed configuration, not code: the
// reference deployment ships A→{A}, B→{B}, C→{A,B} via DefaultCableTable,
// and a caller may supply its own CableTable built with Register to add
// cable types without touching this package.
package cablefilter

import "errors"

// Sentinel errors for cable filtering and endpoint validation.
var (
	// ErrUnknownCable indicates the requested cable type has no registered systems.
	ErrUnknownCable = errors.New("cablefilter: unknown cable type")

	// ErrUnknownNode indicates a validated node key is absent from the graph.
	ErrUnknownNode = errors.New("cablefilter: unknown node")

	// ErrEndpointInForbiddenSystem indicates a node's system tag is not
	// permitted for the requested cable type.
	ErrEndpointInForbiddenSystem = errors.New("cablefilter: endpoint in forbidden system")
)
