package geom

// TriangleBarycentric expresses p as barycentric weights relative to the
// triangle tri (vertices in the same order the caller supplies them). The
// second result reports whether the triangle is non-degenerate; a collinear
// triple produces a zero denominator and TriangleBarycentric returns the
// zero value and false rather than NaN weights.
func TriangleBarycentric(tri [3]Point, p Point) (BarycentricCoords, bool) {
	a, b, c := tri[0], tri[1], tri[2]

	d := (b[1]-c[1])*(a[0]-c[0]) + (c[0]-b[0])*(a[1]-c[1])
	if d == 0 {
		return BarycentricCoords{}, false
	}

	w0 := ((b[1]-c[1])*(p[0]-c[0]) + (c[0]-b[0])*(p[1]-c[1])) / d
	w1 := ((c[1]-a[1])*(p[0]-c[0]) + (a[0]-c[0])*(p[1]-c[1])) / d
	w2 := 1 - w0 - w1

	return BarycentricCoords{W0: w0, W1: w1, W2: w2}, true
}

// ToPoint reconstructs the Cartesian point these weights represent relative
// to tri, the inverse of TriangleBarycentric.
func (w BarycentricCoords) ToPoint(tri [3]Point) Point {
	x := w.W0*tri[0][0] + w.W1*tri[1][0] + w.W2*tri[2][0]
	y := w.W0*tri[0][1] + w.W1*tri[1][1] + w.W2*tri[2][1]
	return NewPoint(x, y)
}

// Interpolate blends per-vertex scalar values using these weights, e.g. to
// interpolate an attribute sampled at a triangle's vertices to an arbitrary
// point inside it.
func (w BarycentricCoords) Interpolate(vals [3]float64) float64 {
	return w.W0*vals[0] + w.W1*vals[1] + w.W2*vals[2]
}

// InRange reports whether the weights place the point inside the triangle
// (allowing each weight to fall up to tol below 0, so points on or just
// outside an edge within tolerance still count as contained).
func (w BarycentricCoords) InRange(tol float64) bool {
	return w.W0 >= -tol && w.W1 >= -tol && w.W2 >= -tol
}
