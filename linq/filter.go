package linq

import (
	"iter"

	"github.com/lguimbarda/min-linq/linq/container"
	"github.com/lguimbarda/min-linq/linq/core"
)

// Filter is a deferred filter over a source container. S fixes the source
// kind at compile time, so each kind gets its own instantiation; P is the
// predicate functor, held by value.
//
// The zero Filter is not usable; build one with an entry point.
type Filter[T any, S container.Source[T], P core.Predicate[T]] struct {
	source    S
	predicate P
}

// WhereWhere fuses a second filter into f. The result enumerates f's source
// once and tests predicate only on elements f's predicate accepted.
func WhereWhere[T any, S container.Source[T], P1 core.Predicate[T], P2 core.Predicate[T]](f Filter[T, S, P1], predicate P2) Filter[T, S, core.And[T, P1, P2]] {
	return Filter[T, S, core.And[T, P1, P2]]{
		source:    f.source,
		predicate: core.PredicateAnd[T](f.predicate, predicate),
	}
}

// WhereSelect fuses a projection into f. The selector runs exactly once per
// element accepted by f's predicate.
func WhereSelect[T, R any, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](f Filter[T, S, P], selector F) FilterSelect[T, R, S, P, F] {
	return FilterSelect[T, R, S, P, F]{
		source:    f.source,
		predicate: f.predicate,
		selector:  selector,
	}
}

// Enumerator returns a cursor positioned before the first match. Over a
// non-contiguous source the underlying iteration starts on the first
// MoveNext, so an enumerator that is never advanced holds no resources.
func (f Filter[T, S, P]) Enumerator() FilterEnumerator[T, P] {
	e := FilterEnumerator[T, P]{predicate: f.predicate, index: -1}
	if view, ok := f.source.Contiguous(); ok {
		e.view = view
		return e
	}
	e.pull.seq = f.source.All()
	return e
}

// All returns an iterator over the matching elements.
func (f Filter[T, S, P]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if view, ok := f.source.Contiguous(); ok {
			for i := range view {
				if f.predicate.Invoke(view[i]) && !yield(view[i]) {
					return
				}
			}
			return
		}
		for v := range f.source.All() {
			if f.predicate.Invoke(v) && !yield(v) {
				return
			}
		}
	}
}

// FilterEnumerator is a pull cursor over a Filter. Copies made before the
// first MoveNext enumerate independently. Over a non-contiguous source,
// copies made after it share the source's iteration and must be closed
// once.
type FilterEnumerator[T any, P core.Predicate[T]] struct {
	predicate P
	view      []T
	index     int
	current   T
	pull      pullCursor[T]
}

// MoveNext advances to the next matching element and reports whether there
// was one.
func (e *FilterEnumerator[T, P]) MoveNext() bool {
	if e.pull.seq != nil {
		for {
			v, ok := e.pull.next()
			if !ok {
				return false
			}
			if e.predicate.Invoke(v) {
				e.current = v
				return true
			}
		}
	}
	for e.index++; e.index < len(e.view); e.index++ {
		if e.predicate.Invoke(e.view[e.index]) {
			e.current = e.view[e.index]
			return true
		}
	}
	e.index = len(e.view)
	return false
}

// Current returns the element at the cursor. It is only meaningful after
// MoveNext returned true.
func (e *FilterEnumerator[T, P]) Current() T {
	return e.current
}

// Close stops the iteration of a non-contiguous source; MoveNext reports
// false afterwards. It is safe to call more than once and a no-op for
// contiguous sources.
func (e *FilterEnumerator[T, P]) Close() {
	e.pull.close()
}

// isAlways reports whether P is the unfiltered predicate. The check is on
// the pointer type so it never boxes a predicate value.
func isAlways[T any, P core.Predicate[T]]() bool {
	_, ok := any((*P)(nil)).(*core.Always[T])
	return ok
}
