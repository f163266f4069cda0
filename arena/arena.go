package arena

import "iter"

// noFree marks the end of the free-list (and the initial state of an empty
// arena): there is no recycled slot to hand out.
const noFree = 0

// Push stores v in the arena and returns a handle addressing it. If the
// free-list is non-empty the recycled slot is reused; otherwise the backing
// slice grows by one.
func (a *Arena[T]) Push(v T) Handle[T] {
	if a.firstFree != noFree {
		idx := a.firstFree - 1
		a.firstFree = a.slots[idx].nextFree
		a.slots[idx] = slot[T]{occupied: true, value: v}
		return Handle[T]{index: idx + 1}
	}

	a.slots = append(a.slots, slot[T]{occupied: true, value: v})
	return Handle[T]{index: len(a.slots)}
}

// Get returns a copy of the value h addresses, and whether h was valid and
// still live. Use GetMut for in-place mutation.
func (a *Arena[T]) Get(h Handle[T]) (T, bool) {
	s := a.slot(h)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// GetMut returns a pointer to the value h addresses, or nil if h is invalid
// or addresses a slot that has been removed. The returned pointer is only
// valid until the next Push, which may reallocate the backing slice.
func (a *Arena[T]) GetMut(h Handle[T]) *T {
	s := a.slot(h)
	if s == nil {
		return nil
	}
	return &s.value
}

func (a *Arena[T]) slot(h Handle[T]) *slot[T] {
	if !h.Valid() || h.index > len(a.slots) {
		return nil
	}
	s := &a.slots[h.index-1]
	if !s.occupied {
		return nil
	}
	return s
}

// Remove deletes the value h addresses and returns it, or the zero value
// and false if h was already invalid or removed. The freed slot is pushed
// onto the free-list for the next Push to reclaim.
func (a *Arena[T]) Remove(h Handle[T]) (T, bool) {
	s := a.slot(h)
	if s == nil {
		var zero T
		return zero, false
	}

	v := s.value
	*s = slot[T]{occupied: false, nextFree: a.firstFree}
	a.firstFree = h.index
	return v, true
}

// Len returns the number of live (non-removed) values in the arena.
func (a *Arena[T]) Len() int {
	n := 0
	for _, s := range a.slots {
		if s.occupied {
			n++
		}
	}
	return n
}

// All iterates every live handle/value pair in slot order. Mutating the
// arena (Push or Remove) during iteration has undefined effect on the
// iteration in progress.
func (a *Arena[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for i := range a.slots {
			if !a.slots[i].occupied {
				continue
			}
			if !yield(Handle[T]{index: i + 1}, &a.slots[i].value) {
				return
			}
		}
	}
}
