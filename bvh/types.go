package bvh

import "github.com/go-trimesh/trimesh2d/geom"

// entry pairs a stored element with the bbox it was inserted under. The
// bbox is kept alongside the element (rather than recomputed) because the
// tree has no way to derive a bbox from an opaque Elem on its own.
type entry[Elem comparable] struct {
	elem Elem
	bbox geom.Bbox
}

// node is the tagged union of bvh node kinds: a *leafNode or a *branchNode.
// It carries no methods of its own beyond the unexported marker; all tree
// logic switches on the concrete type in bvh.go.
type node[Elem comparable] interface {
	bounds() geom.Bbox
}

type leafNode[Elem comparable] struct {
	bbox    geom.Bbox
	entries []entry[Elem]
}

func (n *leafNode[Elem]) bounds() geom.Bbox { return n.bbox }

type branchNode[Elem comparable] struct {
	bbox     geom.Bbox
	children [4]node[Elem]
}

func (n *branchNode[Elem]) bounds() geom.Bbox { return n.bbox }

// Bvh is a 4-ary bounding-volume hierarchy over Elem, keyed by caller-
// supplied bboxes. LeafSize and MinBBoxArea are fixed at construction via
// New's config; the zero Bvh is not usable on its own.
type Bvh[Elem comparable] struct {
	root        node[Elem]
	leafSize    int
	minBBoxArea float64
}
