package mesh

import (
	"fmt"
	"iter"

	"github.com/go-trimesh/trimesh2d/geom"
)

// Vertices yields every inserted vertex and its position, in arena storage
// order, excluding the three super-triangle corners seeded at construction.
func (m *DelaunayMesh) Vertices() iter.Seq2[VertexHandle, geom.Point] {
	return func(yield func(VertexHandle, geom.Point) bool) {
		for h, v := range m.vertices.All() {
			if m.isSuperVertex(h) {
				continue
			}
			if !yield(h, v.Pos) {
				return
			}
		}
	}
}

// Triangles yields every triangle of the current triangulation and its
// three vertex handles, excluding any triangle that still touches a
// super-triangle corner.
func (m *DelaunayMesh) Triangles() iter.Seq2[FaceHandle, [3]VertexHandle] {
	return func(yield func(FaceHandle, [3]VertexHandle) bool) {
		for h := range m.faces.All() {
			if m.touchesSuperVertex(h) {
				continue
			}
			if !yield(h, m.triangleVertices(h)) {
				return
			}
		}
	}
}

// TriangleVertices returns the three vertex positions of the triangle f
// addresses. It returns an error if f does not address a live face.
func (m *DelaunayMesh) TriangleVertices(f FaceHandle) ([3]geom.Point, error) {
	if m.faces.GetMut(f) == nil {
		return [3]geom.Point{}, fmt.Errorf("mesh: invalid face handle")
	}
	return m.trianglePoints(f), nil
}
