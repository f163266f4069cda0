package geom

import "github.com/go-gl/mathgl/mgl64"

// Point is an ordered pair of double-precision reals (x, y). It is a direct
// alias of mgl64.Vec2, so the full mathgl vector API (Add, Sub, Mul, Dot, Len,
// ...) is available on any Point.
type Point = mgl64.Vec2

// NewPoint constructs a Point from its coordinates.
func NewPoint(x, y float64) Point {
	return Point{x, y}
}

// X returns the point's x coordinate.
func X(p Point) float64 { return p[0] }

// Y returns the point's y coordinate.
func Y(p Point) float64 { return p[1] }

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return a.Sub(b).Len()
}

// Dist2 returns the squared Euclidean distance between a and b, avoiding the
// sqrt Dist pays for.
func Dist2(a, b Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Bbox is an axis-aligned rectangle given by its min and max corners, with
// Min.X() <= Max.X() and Min.Y() <= Max.Y().
type Bbox struct {
	min Point
	max Point
}

// Circle is a center point and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// BarycentricCoords are weights (w0, w1, w2) summing to 1 that express a
// point as an affine combination of a triangle's three vertices, in the same
// order the triangle's vertices were supplied in.
type BarycentricCoords struct {
	W0, W1, W2 float64
}
