package geom

import "math"

// NewBbox returns the degenerate bbox {p, p}, the natural starting point for
// growing a bbox with repeated Expand calls.
func NewBbox(p Point) Bbox {
	return Bbox{min: p, max: p}
}

// Min returns the bbox's minimum corner.
func (b Bbox) Min() Point { return b.min }

// Max returns the bbox's maximum corner.
func (b Bbox) Max() Point { return b.max }

// Center returns the midpoint of the bbox.
func (b Bbox) Center() Point {
	return b.min.Add(b.max).Mul(0.5)
}

// Dimensions returns the (width, height) vector of the bbox.
func (b Bbox) Dimensions() Point {
	return b.max.Sub(b.min)
}

// Area returns width * height. A collapsed bbox (a point or a line) has
// area 0, which callers (notably bvh) use to stop subdividing.
func (b Bbox) Area() float64 {
	d := b.Dimensions()
	return d[0] * d[1]
}

// Expand grows the bbox, if necessary, to also contain p.
func (b *Bbox) Expand(p Point) {
	b.min[0] = math.Min(b.min[0], p[0])
	b.min[1] = math.Min(b.min[1], p[1])
	b.max[0] = math.Max(b.max[0], p[0])
	b.max[1] = math.Max(b.max[1], p[1])
}

// Enlarge dilates the bbox uniformly in every direction by amount.
func (b *Bbox) Enlarge(amount float64) {
	b.min[0] -= amount
	b.min[1] -= amount
	b.max[0] += amount
	b.max[1] += amount
}

// Contains reports whether p lies within the (closed) bbox.
func (b Bbox) Contains(p Point) bool {
	return b.min[0] <= p[0] && b.min[1] <= p[1] &&
		b.max[0] >= p[0] && b.max[1] >= p[1]
}

// Intersection returns the overlapping rectangle of b and other, or false in
// its second result if they don't overlap.
func (b Bbox) Intersection(other Bbox) (Bbox, bool) {
	minX := math.Max(b.min[0], other.min[0])
	minY := math.Max(b.min[1], other.min[1])
	maxX := math.Min(b.max[0], other.max[0])
	maxY := math.Min(b.max[1], other.max[1])

	if minX > maxX || minY > maxY {
		return Bbox{}, false
	}
	return Bbox{min: NewPoint(minX, minY), max: NewPoint(maxX, maxY)}, true
}

// Intersects reports whether b and other overlap, without constructing the
// intersection rectangle.
func (b Bbox) Intersects(other Bbox) bool {
	_, ok := b.Intersection(other)
	return ok
}

// Split partitions the bbox into four quadrants around pivot, which must lie
// inside the bbox. The returned order is fixed: bottom-left, bottom-right,
// top-left, top-right (x varies fastest, then y).
func (b Bbox) Split(pivot Point) [4]Bbox {
	return [4]Bbox{
		{min: b.min, max: pivot},
		{min: NewPoint(pivot[0], b.min[1]), max: NewPoint(b.max[0], pivot[1])},
		{min: NewPoint(b.min[0], pivot[1]), max: NewPoint(pivot[0], b.max[1])},
		{min: pivot, max: b.max},
	}
}
