package bvh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-trimesh/trimesh2d/bvh"
	"github.com/go-trimesh/trimesh2d/config"
	"github.com/go-trimesh/trimesh2d/geom"
)

func worldBbox() geom.Bbox {
	b := geom.NewBbox(geom.NewPoint(0, 0))
	b.Expand(geom.NewPoint(100, 100))
	return b
}

func pointBbox(p geom.Point) geom.Bbox {
	return geom.NewBbox(p)
}

func TestInsertAndEnclosing(t *testing.T) {
	tree := bvh.New[int](worldBbox(), config.Default())

	tree.Insert(1, pointBbox(geom.NewPoint(10, 10)))
	tree.Insert(2, pointBbox(geom.NewPoint(50, 50)))
	tree.Insert(3, pointBbox(geom.NewPoint(90, 90)))

	assert.Equal(t, 3, tree.Len())

	var got []int
	for e := range tree.Enclosing(geom.NewPoint(50, 50), nil) {
		got = append(got, e)
	}
	assert.ElementsMatch(t, []int{2}, got)
}

func TestEnclosingFilterPredicate(t *testing.T) {
	tree := bvh.New[string](worldBbox(), config.Default())
	b := geom.NewBbox(geom.NewPoint(0, 0))
	b.Expand(geom.NewPoint(20, 20))
	tree.Insert("a", b)
	tree.Insert("b", b)

	var got []string
	for e := range tree.Enclosing(geom.NewPoint(5, 5), func(e string) bool { return e == "b" }) {
		got = append(got, e)
	}
	assert.Equal(t, []string{"b"}, got)
}

func TestSplitOnOverflow(t *testing.T) {
	cfg := config.New(config.WithLeafSize(4))
	tree := bvh.New[int](worldBbox(), cfg)

	for i := 0; i < 20; i++ {
		x := float64(i % 10 * 10)
		y := float64(i / 10 * 10)
		tree.Insert(i, pointBbox(geom.NewPoint(x, y)))
	}

	assert.Equal(t, 20, tree.Len())
	assert.Greater(t, tree.Depth(), 1)

	var found bool
	for e := range tree.Enclosing(geom.NewPoint(0, 0), nil) {
		if e == 0 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMinBBoxAreaStopsSplitting(t *testing.T) {
	cfg := config.New(config.WithLeafSize(1), config.WithMinBBoxArea(1e6))
	tiny := geom.NewBbox(geom.NewPoint(0, 0))
	tiny.Expand(geom.NewPoint(1, 1))

	tree := bvh.New[int](tiny, cfg)
	tree.Insert(1, pointBbox(geom.NewPoint(0, 0)))
	tree.Insert(2, pointBbox(geom.NewPoint(1, 1)))

	assert.Equal(t, 1, tree.Depth())
	assert.Equal(t, 2, tree.Len())
}

func TestRemove(t *testing.T) {
	tree := bvh.New[int](worldBbox(), config.Default())
	bb := pointBbox(geom.NewPoint(10, 10))
	tree.Insert(1, bb)

	removed := tree.Remove(1, bb)
	require.True(t, removed)
	assert.Equal(t, 0, tree.Len())

	var got []int
	for e := range tree.Enclosing(geom.NewPoint(10, 10), nil) {
		got = append(got, e)
	}
	assert.Empty(t, got)
}

func TestRemoveNonexistentReturnsFalse(t *testing.T) {
	tree := bvh.New[int](worldBbox(), config.Default())
	removed := tree.Remove(99, pointBbox(geom.NewPoint(1, 1)))
	assert.False(t, removed)
}

func TestDepthUnsplitRoot(t *testing.T) {
	tree := bvh.New[int](worldBbox(), config.Default())
	assert.Equal(t, 1, tree.Depth())
}
