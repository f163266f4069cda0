// Package bvh implements a 4-ary bounding-volume hierarchy over arbitrary
// comparable elements, each stored alongside an axis-aligned bbox. It is the
// spatial index the mesh package uses for point location: given a query
// point, Enclosing yields every element whose bbox could contain it, one at
// a time, without the mesh ever walking its whole triangle list.
//
// The tree holds a fixed branching factor of four, splitting a leaf's bbox
// into quadrants around its center once the leaf grows past its configured
// capacity. An element whose bbox straddles more than one quadrant is stored
// in every quadrant it intersects, trading some duplication for a tree with
// no element-specific rebalancing logic. Splitting stops once the bbox
// being divided is no larger than the configured minimum area, since a
// region that can't meaningfully shrink further isn't worth subdividing.
package bvh
