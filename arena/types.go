package arena

// Handle addresses a value of type T stored in an Arena[T]. The zero Handle
// is never returned by Push, so callers can use it as a "no handle" sentinel
// in their own structs.
type Handle[T any] struct {
	index int
}

// Valid reports whether h could plausibly address a live slot, i.e. it was
// produced by Push and not the zero value. It does not guarantee the slot
// hasn't since been removed and reused.
func (h Handle[T]) Valid() bool { return h.index > 0 }

// slot is either a free slot pointing at the next free slot (forming a
// singly-linked free-list through the backing array) or an occupied slot
// holding a live value.
type slot[T any] struct {
	occupied bool
	value    T
	nextFree int
}

// Arena is a free-list-backed container addressed by Handle[T]. The zero
// Arena is ready to use.
type Arena[T any] struct {
	slots     []slot[T]
	firstFree int
}
