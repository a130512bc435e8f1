// Package ioformat (de)serializes the external JSON formats the CLI needs
// to exercise package core and package orchestrator: tagged graphs, tramo
// maps, forbidden-section lists, legacy untagged adjacency, and the
// emitted PathResult. It uses github.com/json-iterator/go configured as a
// drop-in replacement for encoding/json, since coordinate-heavy payloads
// favor a faster codec without changing wire compatibility.
//
// It does not implement DXF export, CAD visualization, ad-hoc diagnostic
// scripts, or a configuration-file layer.
package ioformat

import "errors"

// Sentinel errors.
var (
	// ErrCanonicalKeySyntax indicates a node or tramo-map key was not of
	// the form "(x, y, z)".
	ErrCanonicalKeySyntax = errors.New("ioformat: malformed canonical key")

	// ErrTramoMapCoverage indicates a tramo map did not cover every edge
	// exactly once.
	ErrTramoMapCoverage = errors.New("ioformat: tramo map coverage mismatch")

	// ErrLegacyNeighborSyntax indicates a legacy adjacency entry was
	// neither a 3-element coordinate array nor a canonical key string.
	ErrLegacyNeighborSyntax = errors.New("ioformat: malformed legacy adjacency neighbor")
)

var json = jsoniterConfig()
