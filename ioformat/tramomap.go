// File: tramomap.go
// Role: tramo-map wire format: object mapping "keyLo-keyHi" to a
// positive integer ID, required to cover every edge of the graph exactly
// once.
package ioformat

import (
	"fmt"
)

// DecodeTramoMap parses the tramo-map JSON format into a plain
// map[string]uint64 suitable for core.LoadTaggedGraph's tramoMap
// parameter. edgeCount, when >= 0, is checked against the decoded entry
// count; pass -1 to skip the check (e.g. when decoding ahead of the
// graph).
func DecodeTramoMap(data []byte, edgeCount int) (map[string]uint64, error) {
	var doc map[string]uint64
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ioformat: decoding tramo map: %w", err)
	}

	if edgeCount >= 0 && len(doc) != edgeCount {
		return nil, fmt.Errorf("%w: map has %d entries, graph has %d edges", ErrTramoMapCoverage, len(doc), edgeCount)
	}

	return doc, nil
}
