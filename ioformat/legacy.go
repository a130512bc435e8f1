// File: legacy.go
// Role: legacy adjacency wire format: untagged, read-only
// compatibility format used only when system filtering is disabled. Each
// neighbor entry is either a canonical key string or a [x, y, z] array;
// string entries are kept verbatim and array entries are converted to this
// package's own canonical text via core.CanonicalKey. Keys are not checked
// against any companion tagged graph or tramo map, so a spacing difference
// between them is not detected here.
package ioformat

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cadimo/pathcore/core"
)

// LegacyAdjacency maps a canonical key to its neighbor keys: string
// neighbors as written in the input, array neighbors in core.CanonicalKey
// form.
type LegacyAdjacency map[string][]string

// DecodeLegacyAdjacency parses the legacy adjacency JSON format.
func DecodeLegacyAdjacency(data []byte) (LegacyAdjacency, error) {
	var raw map[string][]jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ioformat: decoding legacy adjacency: %w", err)
	}

	out := make(LegacyAdjacency, len(raw))
	for key, neighbors := range raw {
		decoded := make([]string, 0, len(neighbors))
		for _, n := range neighbors {
			k, err := decodeLegacyNeighbor(n)
			if err != nil {
				return nil, err
			}
			decoded = append(decoded, k)
		}
		out[key] = decoded
	}

	return out, nil
}

func decodeLegacyNeighbor(raw jsoniter.RawMessage) (string, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString, nil
	}

	var asCoord [3]float64
	if err := json.Unmarshal(raw, &asCoord); err == nil {
		return core.CanonicalKey(r3.Vec{X: asCoord[0], Y: asCoord[1], Z: asCoord[2]}), nil
	}

	return "", fmt.Errorf("%w: %s", ErrLegacyNeighborSyntax, string(raw))
}
