// File: forbidden.go
// Role: forbidden-section wire format: a JSON array of positive
// tramo IDs.
package ioformat

import "fmt"

// DecodeForbiddenSet parses a forbidden-section JSON array into the set
// form package astar consumes.
func DecodeForbiddenSet(data []byte) (map[uint64]struct{}, error) {
	var ids []uint64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("ioformat: decoding forbidden set: %w", err)
	}

	out := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out, nil
}
