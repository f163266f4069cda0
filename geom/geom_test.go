package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-trimesh/trimesh2d/geom"
)

func TestDist(t *testing.T) {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(3, 4)
	assert.InDelta(t, 5.0, geom.Dist(a, b), 1e-12)
	assert.InDelta(t, 25.0, geom.Dist2(a, b), 1e-12)
}

func TestBboxExpandAndContains(t *testing.T) {
	b := geom.NewBbox(geom.NewPoint(0, 0))
	b.Expand(geom.NewPoint(2, 2))
	b.Expand(geom.NewPoint(-1, 5))

	assert.Equal(t, geom.NewPoint(-1, 0), b.Min())
	assert.Equal(t, geom.NewPoint(2, 5), b.Max())
	assert.True(t, b.Contains(geom.NewPoint(0, 0)))
	assert.False(t, b.Contains(geom.NewPoint(10, 10)))
}

func TestBboxEnlarge(t *testing.T) {
	b := geom.NewBbox(geom.NewPoint(0, 0))
	b.Enlarge(1)
	assert.Equal(t, geom.NewPoint(-1, -1), b.Min())
	assert.Equal(t, geom.NewPoint(1, 1), b.Max())
	assert.InDelta(t, 4.0, b.Area(), 1e-12)
}

func TestBboxIntersection(t *testing.T) {
	a := geom.Bbox{}
	a.Expand(geom.NewPoint(0, 0))
	a.Expand(geom.NewPoint(2, 2))

	b := geom.NewBbox(geom.NewPoint(1, 1))
	b.Expand(geom.NewPoint(1, 1))
	b.Expand(geom.NewPoint(3, 3))

	inter, ok := a.Intersection(b)
	require.True(t, ok)
	assert.Equal(t, geom.NewPoint(1, 1), inter.Min())
	assert.Equal(t, geom.NewPoint(2, 2), inter.Max())
	assert.True(t, a.Intersects(b))

	c := geom.NewBbox(geom.NewPoint(10, 10))
	assert.False(t, a.Intersects(c))
}

func TestBboxSplitOrder(t *testing.T) {
	b := geom.Bbox{}
	b.Expand(geom.NewPoint(0, 0))
	b.Expand(geom.NewPoint(4, 4))

	quads := b.Split(geom.NewPoint(2, 2))
	require.Len(t, quads, 4)

	assert.Equal(t, geom.NewPoint(0, 0), quads[0].Min())
	assert.Equal(t, geom.NewPoint(2, 2), quads[0].Max())

	assert.Equal(t, geom.NewPoint(2, 0), quads[1].Min())
	assert.Equal(t, geom.NewPoint(4, 2), quads[1].Max())

	assert.Equal(t, geom.NewPoint(0, 2), quads[2].Min())
	assert.Equal(t, geom.NewPoint(2, 4), quads[2].Max())

	assert.Equal(t, geom.NewPoint(2, 2), quads[3].Min())
	assert.Equal(t, geom.NewPoint(4, 4), quads[3].Max())
}

func TestCircumcircleUnitRightTriangle(t *testing.T) {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(2, 0)
	c := geom.NewPoint(0, 2)

	circ := geom.Circumcircle(a, b, c)

	assert.InDelta(t, 1.0, circ.Center[0], 1e-9)
	assert.InDelta(t, 1.0, circ.Center[1], 1e-9)
	assert.InDelta(t, math.Sqrt2, circ.Radius, 1e-9)

	assert.True(t, circ.Contains(a, 1e-4))
	assert.True(t, circ.Contains(b, 1e-4))
	assert.True(t, circ.Contains(c, 1e-4))
	assert.False(t, circ.Contains(geom.NewPoint(5, 5), 1e-4))
}

func TestCircleBbox(t *testing.T) {
	circ := geom.Circle{Center: geom.NewPoint(1, 1), Radius: 2}
	b := circ.Bbox()
	assert.Equal(t, geom.NewPoint(-1, -1), b.Min())
	assert.Equal(t, geom.NewPoint(3, 3), b.Max())
}

func TestCollinear(t *testing.T) {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(1, 1)
	c := geom.NewPoint(2, 2)
	assert.True(t, geom.Collinear(a, b, c, 1e-9))

	d := geom.NewPoint(2, 2.1)
	assert.False(t, geom.Collinear(a, b, d, 1e-9))
}

func TestTriangleBarycentricRoundTrip(t *testing.T) {
	tri := [3]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(4, 0),
		geom.NewPoint(0, 4),
	}

	for _, p := range []geom.Point{
		geom.NewPoint(1, 1),
		tri[0], tri[1], tri[2],
		geom.NewPoint(2, 2),
	} {
		w, ok := geom.TriangleBarycentric(tri, p)
		require.True(t, ok)
		got := w.ToPoint(tri)
		assert.InDelta(t, p[0], got[0], 1e-9)
		assert.InDelta(t, p[1], got[1], 1e-9)
		assert.InDelta(t, 1.0, w.W0+w.W1+w.W2, 1e-9)
	}
}

func TestTriangleBarycentricContainment(t *testing.T) {
	tri := [3]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(4, 0),
		geom.NewPoint(0, 4),
	}

	inside, ok := geom.TriangleBarycentric(tri, geom.NewPoint(1, 1))
	require.True(t, ok)
	assert.True(t, inside.InRange(1e-9))

	outside, ok := geom.TriangleBarycentric(tri, geom.NewPoint(5, 5))
	require.True(t, ok)
	assert.False(t, outside.InRange(1e-9))
}

func TestTriangleBarycentricDegenerate(t *testing.T) {
	tri := [3]geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 1),
		geom.NewPoint(2, 2),
	}
	_, ok := geom.TriangleBarycentric(tri, geom.NewPoint(0, 1))
	assert.False(t, ok)
}

func TestBarycentricInterpolate(t *testing.T) {
	w := geom.BarycentricCoords{W0: 0.5, W1: 0.25, W2: 0.25}
	got := w.Interpolate([3]float64{10, 20, 30})
	assert.InDelta(t, 17.5, got, 1e-9)
}
