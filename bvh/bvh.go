package bvh

import (
	"iter"

	"github.com/go-trimesh/trimesh2d/config"
	"github.com/go-trimesh/trimesh2d/geom"
)

// New creates an empty Bvh covering bbox, tuned by cfg's LeafSize and
// MinBBoxArea (config.Default if cfg is the zero value).
func New[Elem comparable](bbox geom.Bbox, cfg config.Config) *Bvh[Elem] {
	if cfg.LeafSize == 0 {
		cfg = config.Default()
	}
	return &Bvh[Elem]{
		root:        &leafNode[Elem]{bbox: bbox},
		leafSize:    cfg.LeafSize,
		minBBoxArea: cfg.MinBBoxArea,
	}
}

// Insert stores e under bbox, descending into every child whose region
// intersects bbox and splitting any leaf that grows past the configured
// leaf size (and is still larger than the minimum split area).
func (b *Bvh[Elem]) Insert(e Elem, bbox geom.Bbox) {
	b.root = b.insert(b.root, entry[Elem]{elem: e, bbox: bbox})
}

func (b *Bvh[Elem]) insert(n node[Elem], e entry[Elem]) node[Elem] {
	switch cur := n.(type) {
	case *branchNode[Elem]:
		for i := range cur.children {
			if cur.children[i].bounds().Intersects(e.bbox) {
				cur.children[i] = b.insert(cur.children[i], e)
			}
		}
		return cur

	case *leafNode[Elem]:
		cur.entries = append(cur.entries, e)
		if len(cur.entries) <= b.leafSize || cur.bbox.Area() <= b.minBBoxArea {
			return cur
		}
		return b.split(cur)

	default:
		return n
	}
}

// split converts a leaf that has grown past capacity into a branch with
// four leaf children, redistributing every entry into each quadrant it
// intersects.
func (b *Bvh[Elem]) split(leaf *leafNode[Elem]) node[Elem] {
	quads := leaf.bbox.Split(leaf.bbox.Center())

	branch := &branchNode[Elem]{bbox: leaf.bbox}
	for i, q := range quads {
		branch.children[i] = &leafNode[Elem]{bbox: q}
	}

	for _, e := range leaf.entries {
		for i := range branch.children {
			if branch.children[i].bounds().Intersects(e.bbox) {
				branch.children[i] = b.insert(branch.children[i], e)
			}
		}
	}
	return branch
}

// Remove deletes every stored (e, bbox) pair equal to the given values
// from every leaf whose region intersects bbox. It reports whether at least
// one matching entry was found and removed.
func (b *Bvh[Elem]) Remove(e Elem, bbox geom.Bbox) bool {
	return removeFrom(b.root, e, bbox)
}

func removeFrom[Elem comparable](n node[Elem], e Elem, bbox geom.Bbox) bool {
	switch cur := n.(type) {
	case *branchNode[Elem]:
		removed := false
		for i := range cur.children {
			if cur.children[i].bounds().Intersects(bbox) {
				if removeFrom(cur.children[i], e, bbox) {
					removed = true
				}
			}
		}
		return removed

	case *leafNode[Elem]:
		removed := false
		for i := 0; i < len(cur.entries); i++ {
			if cur.entries[i].elem == e && cur.entries[i].bbox == bbox {
				cur.entries = append(cur.entries[:i], cur.entries[i+1:]...)
				i--
				removed = true
			}
		}
		return removed

	default:
		return false
	}
}

// Enclosing lazily yields every distinct element whose stored bbox
// contains p and for which contains(elem) reports true, skipping duplicate
// elements that were inserted into more than one quadrant. A nil contains
// accepts every candidate.
func (b *Bvh[Elem]) Enclosing(p geom.Point, contains func(Elem) bool) iter.Seq[Elem] {
	return func(yield func(Elem) bool) {
		seen := map[Elem]bool{}
		var walk func(n node[Elem]) bool
		walk = func(n node[Elem]) bool {
			if !n.bounds().Contains(p) {
				return true
			}
			switch cur := n.(type) {
			case *branchNode[Elem]:
				for _, child := range cur.children {
					if !walk(child) {
						return false
					}
				}
			case *leafNode[Elem]:
				for _, e := range cur.entries {
					if seen[e.elem] || !e.bbox.Contains(p) {
						continue
					}
					seen[e.elem] = true
					if contains != nil && !contains(e.elem) {
						continue
					}
					if !yield(e.elem) {
						return false
					}
				}
			}
			return true
		}
		walk(b.root)
	}
}

// Len returns the total number of stored (element, bbox) entries, counting
// an element once for every quadrant it was inserted into.
func (b *Bvh[Elem]) Len() int {
	var count func(n node[Elem]) int
	count = func(n node[Elem]) int {
		switch cur := n.(type) {
		case *branchNode[Elem]:
			total := 0
			for _, child := range cur.children {
				total += count(child)
			}
			return total
		case *leafNode[Elem]:
			return len(cur.entries)
		default:
			return 0
		}
	}
	return count(b.root)
}

// Depth returns the number of levels in the tree; an unsplit root leaf has
// depth 1.
func (b *Bvh[Elem]) Depth() int {
	var depth func(n node[Elem]) int
	depth = func(n node[Elem]) int {
		branch, ok := n.(*branchNode[Elem])
		if !ok {
			return 1
		}
		max := 0
		for _, child := range branch.children {
			if d := depth(child); d > max {
				max = d
			}
		}
		return max + 1
	}
	return depth(b.root)
}
