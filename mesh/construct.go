package mesh

import (
	"math"

	"github.com/go-trimesh/trimesh2d/bvh"
	"github.com/go-trimesh/trimesh2d/config"
	"github.com/go-trimesh/trimesh2d/geom"
)

// New builds an empty triangulation ready to accept points inside bbox. It
// seeds the mesh with a super-triangle large enough to strictly contain
// bbox (scaled by cfg.SuperTriangleScale), so every subsequent Insert of a
// point within bbox locates into real geometry rather than off the edge of
// the mesh.
func New(bbox geom.Bbox, opts ...Option) *DelaunayMesh {
	cfg := config.New(opts...)

	m := &DelaunayMesh{cfg: cfg, bbox: bbox}

	center := bbox.Center()
	diag := geom.Dist(bbox.Min(), bbox.Max())
	if diag == 0 {
		diag = 1
	}
	radius := diag * cfg.SuperTriangleScale

	var corners [3]geom.Point
	for k := 0; k < 3; k++ {
		angle := math.Pi/2 + 2*math.Pi*float64(k)/3
		corners[k] = geom.NewPoint(
			center[0]+radius*math.Cos(angle),
			center[1]+radius*math.Sin(angle),
		)
	}

	var verts [3]VertexHandle
	for k, p := range corners {
		verts[k] = m.vertices.Push(Vertex{Pos: p})
	}
	m.super = verts

	e1 := m.edges.Push(HalfEdge{Origin: verts[0]})
	e2 := m.edges.Push(HalfEdge{Origin: verts[1]})
	e3 := m.edges.Push(HalfEdge{Origin: verts[2]})

	face := m.faces.Push(Face{Edge: e1})

	*m.edges.GetMut(e1) = HalfEdge{Origin: verts[0], Next: e2, Face: face}
	*m.edges.GetMut(e2) = HalfEdge{Origin: verts[1], Next: e3, Face: face}
	*m.edges.GetMut(e3) = HalfEdge{Origin: verts[2], Next: e1, Face: face}

	superBbox := geom.NewBbox(corners[0])
	superBbox.Expand(corners[1])
	superBbox.Expand(corners[2])

	m.index = bvh.New[FaceHandle](superBbox, cfg)
	m.index.Insert(face, superBbox)

	return m
}

// Bbox returns the bounding box the mesh was constructed with — the region
// within which Insert accepts points.
func (m *DelaunayMesh) Bbox() geom.Bbox {
	return m.bbox
}
