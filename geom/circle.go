package geom

import "gonum.org/v1/gonum/floats/scalar"

// Collinear reports whether a, b, c lie on a common line, within tol of the
// signed-area test being zero. Pass tol=0 for the exact test (useful for
// test fixtures); mesh construction uses a small positive tolerance since
// inserted points are floating-point coordinates, not exact rationals.
func Collinear(a, b, c Point, tol float64) bool {
	area := a[0]*(b[1]-c[1]) + b[0]*(c[1]-a[1]) + c[0]*(a[1]-b[1])
	if tol == 0 {
		return area == 0
	}
	return scalar.EqualWithinAbs(area, 0, tol)
}

// Circumcircle returns the unique circle passing through a, b and c. The
// three points must not be collinear: a degenerate (collinear) triple drives
// the denominator to zero and produces a circle with infinite or NaN
// components, which callers must guard against (see Collinear).
func Circumcircle(a, b, c Point) Circle {
	// https://en.wikipedia.org/wiki/Circumscribed_circle#Cartesian_coordinates_2
	bb := b.Sub(a)
	cc := c.Sub(a)

	d := 2.0 * (bb[0]*cc[1] - bb[1]*cc[0])
	ux := (cc[1]*(bb[0]*bb[0]+bb[1]*bb[1]) - bb[1]*(cc[0]*cc[0]+cc[1]*cc[1])) / d
	uy := (bb[0]*(cc[0]*cc[0]+cc[1]*cc[1]) - cc[0]*(bb[0]*bb[0]+bb[1]*bb[1])) / d

	offset := NewPoint(ux, uy)
	return Circle{Center: a.Add(offset), Radius: offset.Len()}
}

// Contains reports whether p lies within the circle, allowing it to sit up
// to tol outside the boundary (a point exactly on the circumference always
// satisfies floating-point round-off, hence the one-sided tolerance).
func (c Circle) Contains(p Point, tol float64) bool {
	return Dist(c.Center, p)-c.Radius <= tol
}

// Bbox returns the axis-aligned bounding box of the circle.
func (c Circle) Bbox() Bbox {
	b := NewBbox(c.Center)
	b.Enlarge(c.Radius)
	return b
}
