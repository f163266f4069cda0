package mesh

import (
	"github.com/go-trimesh/trimesh2d/arena"
	"github.com/go-trimesh/trimesh2d/bvh"
	"github.com/go-trimesh/trimesh2d/config"
	"github.com/go-trimesh/trimesh2d/geom"
)

// VertexHandle, HalfEdgeHandle and FaceHandle address values stored in a
// DelaunayMesh's arenas. Being distinct instantiations of arena.Handle,
// they are incompatible at compile time: a VertexHandle can never be passed
// where a FaceHandle is expected.
type (
	VertexHandle   = arena.Handle[Vertex]
	HalfEdgeHandle = arena.Handle[HalfEdge]
	FaceHandle     = arena.Handle[Face]
)

// Vertex is a single inserted point (or one of the three super-triangle
// corners).
type Vertex struct {
	Pos geom.Point
}

// HalfEdge is one directed side of a triangle: it runs from Origin to the
// origin of Next, Twin is the opposite-direction half-edge on the other
// side of the same undirected edge (the zero HalfEdgeHandle if this edge
// borders no other triangle, i.e. a boundary edge), and Face is the
// triangle this half-edge bounds.
type HalfEdge struct {
	Origin VertexHandle
	Twin   HalfEdgeHandle
	Next   HalfEdgeHandle
	Face   FaceHandle
}

// Face is a single triangle, identified by any one of its three bounding
// half-edges; the other two are reached by following Next.
type Face struct {
	Edge HalfEdgeHandle
}

// Option configures a DelaunayMesh at construction; it is exactly
// config.Option; New(bbox, opts...) applies opts on top of config.Default.
type Option = config.Option

// DelaunayMesh is an incrementally-built planar Delaunay triangulation. The
// zero DelaunayMesh is not valid; use New.
type DelaunayMesh struct {
	vertices arena.Arena[Vertex]
	edges    arena.Arena[HalfEdge]
	faces    arena.Arena[Face]
	index    *bvh.Bvh[FaceHandle]

	cfg   config.Config
	bbox  geom.Bbox
	super [3]VertexHandle
}
