package config

import "errors"

// Sentinel errors returned by Config.Validate and by Parse/Load when the
// decoded document fails validation.
var (
	ErrNonPositiveEpsilon     = errors.New("config: epsilon must be positive")
	ErrNonPositiveBaryEpsilon = errors.New("config: bary epsilon must be positive")
	ErrNonPositiveMinBBoxArea = errors.New("config: min bbox area must be positive")
	ErrNonPositiveLeafSize    = errors.New("config: leaf size must be positive")
	ErrNonPositiveFlipCeiling = errors.New("config: flip ceiling factor must be positive")
	ErrNonPositiveSuperScale  = errors.New("config: super triangle scale must be positive")
)

// Config holds every numeric tolerance and tuning parameter used by geom,
// bvh and mesh. The zero Config is not valid; use Default or New.
type Config struct {
	// Epsilon is the general floating-point tolerance used for circumcircle
	// containment and near-zero comparisons (spec default 1e-4).
	Epsilon float64

	// BaryEpsilon is the tolerance applied to barycentric weights when
	// deciding whether a point lies inside a triangle.
	BaryEpsilon float64

	// MinBBoxArea is the bounding-box area a bvh leaf must exceed to be
	// subdivided; leaves at or below this area stop splitting regardless
	// of how many entries they hold.
	MinBBoxArea float64

	// LeafSize is the number of entries a bvh leaf holds before it splits
	// into four children.
	LeafSize int

	// FlipCeilingFactor bounds the flip cascade triggered by a single
	// Insert: the cascade aborts with ErrDegenerateGeometry once it has
	// performed more than FlipCeilingFactor * (number of triangles) flips.
	FlipCeilingFactor int

	// SuperTriangleScale multiplies the initial bounding box's diagonal to
	// place the three super-triangle vertices safely outside it.
	SuperTriangleScale float64
}

// Validate reports the first constraint Config violates, or nil if every
// field is within range.
func (c Config) Validate() error {
	switch {
	case c.Epsilon <= 0:
		return ErrNonPositiveEpsilon
	case c.BaryEpsilon <= 0:
		return ErrNonPositiveBaryEpsilon
	case c.MinBBoxArea <= 0:
		return ErrNonPositiveMinBBoxArea
	case c.LeafSize <= 0:
		return ErrNonPositiveLeafSize
	case c.FlipCeilingFactor <= 0:
		return ErrNonPositiveFlipCeiling
	case c.SuperTriangleScale <= 0:
		return ErrNonPositiveSuperScale
	default:
		return nil
	}
}
