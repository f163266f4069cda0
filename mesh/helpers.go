package mesh

import "github.com/go-trimesh/trimesh2d/geom"

// halfEdges returns a face's three bounding half-edges in cycle order,
// starting from its stored Edge.
func (m *DelaunayMesh) halfEdges(f FaceHandle) [3]HalfEdgeHandle {
	face := m.faces.GetMut(f)
	if face == nil {
		panic("mesh: invalid face handle")
	}
	e1 := face.Edge
	e2 := m.edges.GetMut(e1).Next
	e3 := m.edges.GetMut(e2).Next
	return [3]HalfEdgeHandle{e1, e2, e3}
}

// triangleVertices returns a face's three vertex handles, in the same
// cycle order as halfEdges.
func (m *DelaunayMesh) triangleVertices(f FaceHandle) [3]VertexHandle {
	edges := m.halfEdges(f)
	return [3]VertexHandle{
		m.edges.GetMut(edges[0]).Origin,
		m.edges.GetMut(edges[1]).Origin,
		m.edges.GetMut(edges[2]).Origin,
	}
}

// trianglePoints returns a face's three vertex positions, in the same cycle
// order as halfEdges.
func (m *DelaunayMesh) trianglePoints(f FaceHandle) [3]geom.Point {
	verts := m.triangleVertices(f)
	return [3]geom.Point{
		m.vertices.GetMut(verts[0]).Pos,
		m.vertices.GetMut(verts[1]).Pos,
		m.vertices.GetMut(verts[2]).Pos,
	}
}

// faceBbox computes the bounding box of a face's current triangle.
func (m *DelaunayMesh) faceBbox(f FaceHandle) geom.Bbox {
	pts := m.trianglePoints(f)
	b := geom.NewBbox(pts[0])
	b.Expand(pts[1])
	b.Expand(pts[2])
	return b
}

// isSuperVertex reports whether vh is one of the three super-triangle
// corners seeded at construction.
func (m *DelaunayMesh) isSuperVertex(vh VertexHandle) bool {
	return vh == m.super[0] || vh == m.super[1] || vh == m.super[2]
}

// touchesSuperVertex reports whether any of a face's three vertices is a
// super-triangle corner.
func (m *DelaunayMesh) touchesSuperVertex(f FaceHandle) bool {
	for _, vh := range m.triangleVertices(f) {
		if m.isSuperVertex(vh) {
			return true
		}
	}
	return false
}
