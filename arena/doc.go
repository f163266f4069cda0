// Package arena provides a generic slot-allocated container: values of type
// T are pushed in and addressed by a stable Handle[T], removal recycles the
// slot via a free-list instead of shifting or re-indexing the backing slice.
//
// This is the storage discipline the mesh package builds its half-edge
// structure on top of: vertices, half-edges and faces never hold pointers to
// each other, only Handle[T] values, so that removing one doesn't invalidate
// references held by the others.
//
// Arena does not detect use of a handle after its slot has been recycled; a
// stale handle silently addresses whatever now occupies that slot. Callers
// that need that guarantee must build it on top (the mesh package does not,
// since it never removes vertices or faces once inserted).
package arena
