package mesh

import "errors"

// Sentinel errors returned by DelaunayMesh.Insert and the query accessors.
var (
	// ErrOutOfBounds is returned when Insert is given a point outside the
	// bbox the mesh was constructed with.
	ErrOutOfBounds = errors.New("mesh: point lies outside the mesh bounds")

	// ErrNonFinite is returned when Insert is given a point with a NaN or
	// infinite coordinate.
	ErrNonFinite = errors.New("mesh: point has a non-finite coordinate")

	// ErrDegenerateGeometry is returned when point location or the flip
	// cascade cannot make progress because the input geometry is
	// degenerate (e.g. many nearly-collinear or co-circular points), or
	// when the flip cascade's safety ceiling is hit.
	ErrDegenerateGeometry = errors.New("mesh: degenerate geometry encountered")
)
