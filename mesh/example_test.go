package mesh_test

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-trimesh/trimesh2d/geom"
	"github.com/go-trimesh/trimesh2d/mesh"
)

// Example demonstrates building a triangulation over four points and
// reading back the triangles it produced.
func Example() {
	m := mesh.New(bboxOf(geom.NewPoint(-5, -5), geom.NewPoint(15, 15)))

	for _, p := range []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(10, 0),
		geom.NewPoint(10, 10),
		geom.NewPoint(0, 10),
	} {
		if _, err := m.Insert(p); err != nil {
			fmt.Println("insert failed:", err)
			return
		}
	}

	var areas []float64
	for f := range m.Triangles() {
		pts, err := m.TriangleVertices(f)
		if err != nil {
			fmt.Println("lookup failed:", err)
			return
		}
		areas = append(areas, triangleArea(pts))
	}
	sort.Float64s(areas)

	fmt.Println(len(areas), "triangles")
	fmt.Printf("%.1f %.1f\n", areas[0], areas[1])
	// Output:
	// 2 triangles
	// 50.0 50.0
}

func triangleArea(p [3]geom.Point) float64 {
	signed := 0.5 * ((p[1][0]-p[0][0])*(p[2][1]-p[0][1]) - (p[2][0]-p[0][0])*(p[1][1]-p[0][1]))
	return math.Abs(signed)
}
