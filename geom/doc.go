// Package geom provides the 2D geometric primitives shared by the rest of
// this module: points and vector algebra, axis-aligned bounding boxes,
// circles and circumcircles, and barycentric coordinates.
//
// Points embed github.com/go-gl/mathgl's Vec2 directly (Point = mgl64.Vec2),
// so vector arithmetic (Add, Sub, Mul, Dot, Len) is whatever mathgl provides;
// this package only adds the domain-specific operations layered on top:
// bounding-box maintenance, circumcircles, and barycentric containment tests.
//
// All geometry here runs in double-precision floating point with a fixed
// tolerance (see Epsilon and BaryEpsilon in the config package) rather than
// exact/rational arithmetic — callers working with near-degenerate input
// (near-collinear triples, many co-circular points) should expect answers
// that are correct only up to that tolerance.
package geom
