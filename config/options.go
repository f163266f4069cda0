package config

// Option mutates a Config under construction. Mirrors the teacher's
// functional-options pattern (core.GraphOption).
type Option func(*Config)

// Default returns the baseline Config matching the fixed constants the
// spec otherwise hard-codes: Epsilon and BaryEpsilon at 1e-4, a BVH leaf
// size of 128 and minimum split area of 1.0, a flip ceiling factor of 8,
// and a super-triangle scale of 20.
func Default() Config {
	return Config{
		Epsilon:            1e-4,
		BaryEpsilon:        1e-4,
		MinBBoxArea:        1.0,
		LeafSize:           128,
		FlipCeilingFactor:  8,
		SuperTriangleScale: 20.0,
	}
}

// New builds a Config by applying opts on top of Default.
func New(opts ...Option) Config {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithEpsilon overrides the general floating-point tolerance.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithBaryEpsilon overrides the barycentric containment tolerance.
func WithBaryEpsilon(eps float64) Option {
	return func(c *Config) { c.BaryEpsilon = eps }
}

// WithMinBBoxArea overrides the bvh's minimum splittable bbox area.
func WithMinBBoxArea(area float64) Option {
	return func(c *Config) { c.MinBBoxArea = area }
}

// WithLeafSize overrides the bvh's per-leaf entry capacity.
func WithLeafSize(n int) Option {
	return func(c *Config) { c.LeafSize = n }
}

// WithFlipCeilingFactor overrides the flip-cascade safety multiplier.
func WithFlipCeilingFactor(factor int) Option {
	return func(c *Config) { c.FlipCeilingFactor = factor }
}

// WithSuperTriangleScale overrides the super-triangle diagonal multiplier.
func WithSuperTriangleScale(scale float64) Option {
	return func(c *Config) { c.SuperTriangleScale = scale }
}
