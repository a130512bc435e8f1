// File: types.go
// Role: Index configuration, the uniform grid's cell-coordinate type, and
// the match-quality bucket enum used throughout diagnostics.
package spatial

import "gonum.org/v1/gonum/spatial/r3"

// cellCoord identifies one cell of the uniform grid.
type cellCoord [3]int64

// MatchQuality buckets a nearest-node distance for diagnostics.
type MatchQuality int

const (
	// Excellent: distance <= 0.1.
	Excellent MatchQuality = iota
	// VeryGood: distance <= 0.5.
	VeryGood
	// Good: distance <= 1.0.
	Good
	// Poor: distance > 1.0.
	Poor
)

// String renders the bucket name.
func (q MatchQuality) String() string {
	switch q {
	case Excellent:
		return "EXCELLENT"
	case VeryGood:
		return "VERY_GOOD"
	case Good:
		return "GOOD"
	default:
		return "POOR"
	}
}

// BucketFor classifies a distance into a MatchQuality bucket.
func BucketFor(dist float64) MatchQuality {
	switch {
	case dist <= 0.1:
		return Excellent
	case dist <= 0.5:
		return VeryGood
	case dist <= 1.0:
		return Good
	default:
		return Poor
	}
}

// Config tunes Index construction and query behavior.
type Config struct {
	// CellSize overrides the computed default when > 0.
	CellSize float64
	// MaxShellRadius bounds shell expansion during NearestNode (in cells).
	MaxShellRadius int
	// DistantFactor scales the bounding-box diagonal; a query point farther
	// than DistantFactor*diagonal outside the box skips shell expansion and
	// falls back to a brute-force scan.
	DistantFactor float64
}

// Option configures an Index at construction time.
type Option func(*Config)

// WithCellSize fixes the grid cell size explicitly, bypassing DefaultCellSize.
func WithCellSize(size float64) Option {
	return func(c *Config) { c.CellSize = size }
}

// WithMaxShellRadius bounds how many shells NearestNode will expand through.
func WithMaxShellRadius(radius int) Option {
	return func(c *Config) { c.MaxShellRadius = radius }
}

// WithDistantFactor overrides the brute-force fallback threshold multiplier.
func WithDistantFactor(factor float64) Option {
	return func(c *Config) { c.DistantFactor = factor }
}

// DefaultConfig returns the reference tuning: computed cell size, a
// generous shell cap, and a 2x bounding-box-diagonal distant threshold.
func DefaultConfig() Config {
	return Config{
		CellSize:       0, // 0 means "compute from graph" — see DefaultCellSize
		MaxShellRadius: 64,
		DistantFactor:  2.0,
	}
}

func cellOf(v r3.Vec, origin r3.Vec, size float64) cellCoord {
	return cellCoord{
		floorCell(v.X-origin.X, size),
		floorCell(v.Y-origin.Y, size),
		floorCell(v.Z-origin.Z, size),
	}
}

// floorCell returns floor(x/size) as an int64, flooring toward -Inf so
// negative coordinates bucket consistently with positive ones.
func floorCell(x, size float64) int64 {
	q := x / size
	i := int64(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
