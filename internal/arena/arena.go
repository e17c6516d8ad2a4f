/*
Package arena hands out short-lived layout objects.

Layout creates and drops many small objects per pass. An Arena keeps released
objects on a free list and hands them out again after resetting them. It is
meant to be owned by a single layout pass and is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package arena

// Arena is a free-list allocator for values of type T.
type Arena[T any] struct {
	free      []*T
	reset     func(*T)
	allocated int // objects created by this arena
	live      int // objects handed out and not yet released
}

// New creates an arena. reset, if not nil, is applied to every object when it
// is released.
func New[T any](reset func(*T)) *Arena[T] {
	return &Arena[T]{reset: reset}
}

// Allocate returns a zero or freshly reset object. A nil arena allocates from
// the heap.
func (a *Arena[T]) Allocate() *T {
	if a == nil {
		return new(T)
	}
	a.live++
	if n := len(a.free); n > 0 {
		obj := a.free[n-1]
		a.free[n-1] = nil
		a.free = a.free[:n-1]
		return obj
	}
	a.allocated++
	return new(T)
}

// Release puts an object back. Releasing nil or releasing into a nil arena is
// a no-op.
func (a *Arena[T]) Release(obj *T) {
	if a == nil || obj == nil {
		return
	}
	if a.reset != nil {
		a.reset(obj)
	}
	a.live--
	a.free = append(a.free, obj)
}

// Stats reports how many objects have been created and how many are
// currently handed out.
func (a *Arena[T]) Stats() (allocated, live int) {
	if a == nil {
		return 0, 0
	}
	return a.allocated, a.live
}
