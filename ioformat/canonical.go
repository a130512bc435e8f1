package ioformat

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// parseCanonicalKey extracts the numeric triple from a canonical key of
// the form "(x, y, z)" without reformatting it; the key's own text is kept
// as the node's identity elsewhere, this only recovers the geometry.
func parseCanonicalKey(key string) (r3.Vec, error) {
	var x, y, z float64
	n, err := fmt.Sscanf(key, "(%g, %g, %g)", &x, &y, &z)
	if err != nil || n != 3 {
		return r3.Vec{}, fmt.Errorf("%w: %q", ErrCanonicalKeySyntax, key)
	}
	return r3.Vec{X: x, Y: y, Z: z}, nil
}
