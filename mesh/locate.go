package mesh

import "github.com/go-trimesh/trimesh2d/geom"

// locate finds the face whose triangle contains p, using the bvh to narrow
// candidates to those whose bbox encloses p and a barycentric containment
// test to pick the actual triangle among them. It returns ErrDegenerateGeometry
// if no candidate triangle actually contains p, which should only happen for
// points on the boundary of numerically degenerate geometry.
func (m *DelaunayMesh) locate(p geom.Point) (FaceHandle, geom.BarycentricCoords, error) {
	var (
		found    FaceHandle
		foundBary geom.BarycentricCoords
		ok       bool
	)

	for f := range m.index.Enclosing(p, nil) {
		tri := m.trianglePoints(f)
		bary, nondegenerate := geom.TriangleBarycentric(tri, p)
		if !nondegenerate || !bary.InRange(m.cfg.BaryEpsilon) {
			continue
		}
		found, foundBary, ok = f, bary, true
		break
	}

	if !ok {
		return FaceHandle{}, geom.BarycentricCoords{}, ErrDegenerateGeometry
	}
	return found, foundBary, nil
}
