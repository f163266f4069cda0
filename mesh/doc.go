// Package mesh implements an incremental 2D Delaunay triangulation: points
// are inserted one at a time, each insertion locating the triangle that
// contains the new point via a bounding-volume index, splitting that
// triangle into three, and then restoring the Delaunay property with a
// cascade of edge flips.
//
// The mesh is stored as a half-edge structure (DelaunayMesh owns arenas of
// Vertex, HalfEdge and Face, addressed by arena.Handle) rather than a graph
// of pointers, so that no value ever holds a direct reference to another —
// only a handle into the owning arena. A bvh.Bvh[FaceHandle] indexes every
// triangle by its bounding box for point location.
//
// Construction seeds the mesh with a super-triangle large enough to contain
// every point the caller intends to insert; its three vertices and the
// faces built from them are filtered out of Vertices and Triangles so
// callers only ever see their own data.
//
// DelaunayMesh has no internal locking: a *DelaunayMesh must not be shared
// across goroutines without external synchronization, since Insert mutates
// the half-edge structure and the spatial index in place.
package mesh
