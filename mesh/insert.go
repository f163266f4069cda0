package mesh

import (
	"math"

	"github.com/go-trimesh/trimesh2d/geom"
)

// Insert adds p to the triangulation and returns the handle of its vertex.
// If p coincides (within the configured epsilon) with a vertex already in
// the mesh, Insert is idempotent: it returns that vertex's handle without
// modifying the mesh. Insert rejects points with a non-finite coordinate
// (ErrNonFinite) or outside the mesh's bbox (ErrOutOfBounds), and reports
// ErrDegenerateGeometry if point location or the flip cascade cannot
// complete because the surrounding geometry is too close to degenerate.
func (m *DelaunayMesh) Insert(p geom.Point) (VertexHandle, error) {
	if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
		return VertexHandle{}, ErrNonFinite
	}
	if !m.bbox.Contains(p) {
		return VertexHandle{}, ErrOutOfBounds
	}

	f, _, err := m.locate(p)
	if err != nil {
		return VertexHandle{}, err
	}

	for _, vh := range m.triangleVertices(f) {
		if geom.Dist(m.vertices.GetMut(vh).Pos, p) <= m.cfg.Epsilon {
			return vh, nil
		}
	}

	v, boundary := m.splitFace(f, p)

	worklist := append([]HalfEdgeHandle{}, boundary[:]...)
	ceiling := m.cfg.FlipCeilingFactor * m.faces.Len()
	flips := 0

	for len(worklist) > 0 {
		e := worklist[0]
		worklist = worklist[1:]

		requeue, flipped := m.testAndFlip(e)
		if !flipped {
			continue
		}
		flips++
		if flips > ceiling {
			return v, ErrDegenerateGeometry
		}
		worklist = append(worklist, requeue...)
	}

	return v, nil
}
