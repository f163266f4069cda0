package mesh

import "github.com/go-trimesh/trimesh2d/geom"

// testAndFlip examines the edge e (shared between two triangles unless it
// borders the mesh boundary, in which case it can never be flipped) and, if
// the triangle on the far side of e has its apex inside the near triangle's
// circumcircle, performs the flip. It returns the half-edges that newly
// border the two resulting triangles' far neighbors — the next candidates
// the flip cascade must re-examine — and whether a flip actually happened.
func (m *DelaunayMesh) testAndFlip(e HalfEdgeHandle) ([]HalfEdgeHandle, bool) {
	eh := m.edges.GetMut(e)
	if eh == nil || !eh.Twin.Valid() {
		return nil, false
	}
	t := eh.Twin
	th := m.edges.GetMut(t)

	e3 := eh.Next
	e3h := m.edges.GetMut(e3)
	e1 := e3h.Next
	e1h := m.edges.GetMut(e1)

	e4 := th.Next
	e4h := m.edges.GetMut(e4)
	e5 := e4h.Next
	e5h := m.edges.GetMut(e5)

	a := e1h.Origin
	b := eh.Origin
	d := e3h.Origin
	c := e5h.Origin

	posA := m.vertices.GetMut(a).Pos
	posB := m.vertices.GetMut(b).Pos
	posC := m.vertices.GetMut(c).Pos
	posD := m.vertices.GetMut(d).Pos

	if geom.Collinear(posA, posB, posD, m.cfg.Epsilon) {
		return nil, false
	}
	circ := geom.Circumcircle(posA, posB, posD)
	if !circ.Contains(posC, m.cfg.Epsilon) {
		return nil, false
	}

	f1 := eh.Face
	f2 := th.Face

	oldF1Bbox := m.faceBboxFromPoints(a, b, d)
	oldF2Bbox := m.faceBboxFromPoints(d, b, c)

	// Repurpose e (b->d) as a->c, and its twin t (d->b) as c->a.
	eh.Origin, eh.Next, eh.Face = a, e5, f2
	th.Origin, th.Next, th.Face = c, e1, f1

	e1h.Next, e1h.Face = e4, f1
	e4h.Next, e4h.Face = t, f1
	e5h.Next, e5h.Face = e3, f2
	e3h.Next, e3h.Face = e, f2

	*m.faces.GetMut(f1) = Face{Edge: e1}
	*m.faces.GetMut(f2) = Face{Edge: e5}

	m.index.Remove(f1, oldF1Bbox)
	m.index.Remove(f2, oldF2Bbox)
	m.index.Insert(f1, m.faceBbox(f1))
	m.index.Insert(f2, m.faceBbox(f2))

	return []HalfEdgeHandle{e1, e3, e4, e5}, true
}
