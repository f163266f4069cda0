package mesh

import "github.com/go-trimesh/trimesh2d/geom"

// splitFace replaces the triangle at f with three triangles meeting at a
// new vertex placed at p, reusing f's handle for one of the three (and the
// three original bounding half-edges, one per new face) so that neighboring
// faces never need their own half-edges touched. It returns the new
// vertex and the three half-edges that bounded the original triangle
// (each possibly still bordering an untouched neighbor, and so the
// starting work-list for the flip cascade).
func (m *DelaunayMesh) splitFace(f FaceHandle, p geom.Point) (VertexHandle, [3]HalfEdgeHandle) {
	original := m.halfEdges(f)
	e1, e2, e3 := original[0], original[1], original[2]

	v := m.vertices.Push(Vertex{Pos: p})

	// New internal edges, one twin pair per side of the original triangle.
	bv := m.edges.Push(HalfEdge{})
	va := m.edges.Push(HalfEdge{})
	cv := m.edges.Push(HalfEdge{})
	vb := m.edges.Push(HalfEdge{})
	av := m.edges.Push(HalfEdge{})
	vc := m.edges.Push(HalfEdge{})

	f1 := f
	f2 := m.faces.Push(Face{})
	f3 := m.faces.Push(Face{})

	a := m.edges.GetMut(e1).Origin
	b := m.edges.GetMut(e2).Origin
	c := m.edges.GetMut(e3).Origin

	// e1,e2,e3 border whatever lay outside the original triangle; that
	// neighbor's Twin already points at them, so their own Twin must survive
	// the rewrite untouched.
	t1 := m.edges.GetMut(e1).Twin
	t2 := m.edges.GetMut(e2).Twin
	t3 := m.edges.GetMut(e3).Twin

	*m.edges.GetMut(e1) = HalfEdge{Origin: a, Next: bv, Face: f1, Twin: t1}
	*m.edges.GetMut(bv) = HalfEdge{Origin: b, Next: va, Face: f1, Twin: vb}
	*m.edges.GetMut(va) = HalfEdge{Origin: v, Next: e1, Face: f1, Twin: av}

	*m.edges.GetMut(e2) = HalfEdge{Origin: b, Next: cv, Face: f2, Twin: t2}
	*m.edges.GetMut(cv) = HalfEdge{Origin: c, Next: vb, Face: f2, Twin: vc}
	*m.edges.GetMut(vb) = HalfEdge{Origin: v, Next: e2, Face: f2, Twin: bv}

	*m.edges.GetMut(e3) = HalfEdge{Origin: c, Next: av, Face: f3, Twin: t3}
	*m.edges.GetMut(av) = HalfEdge{Origin: a, Next: vc, Face: f3, Twin: va}
	*m.edges.GetMut(vc) = HalfEdge{Origin: v, Next: e3, Face: f3, Twin: cv}

	*m.faces.GetMut(f1) = Face{Edge: e1}
	*m.faces.GetMut(f2) = Face{Edge: e2}
	*m.faces.GetMut(f3) = Face{Edge: e3}

	m.index.Remove(f1, m.faceBboxFromPoints(a, b, c))
	m.index.Insert(f1, m.faceBbox(f1))
	m.index.Insert(f2, m.faceBbox(f2))
	m.index.Insert(f3, m.faceBbox(f3))

	return v, [3]HalfEdgeHandle{e1, e2, e3}
}

// faceBboxFromPoints computes the bbox a triangle of three vertex handles
// had before a split changed what its half-edges point to.
func (m *DelaunayMesh) faceBboxFromPoints(a, b, c VertexHandle) geom.Bbox {
	bx := geom.NewBbox(m.vertices.GetMut(a).Pos)
	bx.Expand(m.vertices.GetMut(b).Pos)
	bx.Expand(m.vertices.GetMut(c).Pos)
	return bx
}
