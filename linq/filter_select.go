package linq

import (
	"iter"

	"github.com/lguimbarda/min-linq/linq/container"
	"github.com/lguimbarda/min-linq/linq/core"
)

// FilterSelect is a fused filter and projection over a source container.
// The predicate sees source elements; the selector runs once per accepted
// element to produce the output. FilterSelect values are produced by Select,
// WhereSelect and WhereSelectWhere.
type FilterSelect[T, R any, S container.Source[T], P core.Predicate[T], F core.Func[T, R]] struct {
	source    S
	predicate P
	selector  F
}

// WhereSelectWhere fuses a filter on projected values into fs. The result
// enumerates fs's source once, testing fs's predicate first and then
// predicate(selector(v)), and projects the elements that pass both.
func WhereSelectWhere[T, R any, S container.Source[T], P core.Predicate[T], F core.Func[T, R], P2 core.Predicate[R]](fs FilterSelect[T, R, S, P, F], predicate P2) FilterSelect[T, R, S, core.And[T, P, core.Compose[T, R, F, P2]], F] {
	return FilterSelect[T, R, S, core.And[T, P, core.Compose[T, R, F, P2]], F]{
		source:    fs.source,
		predicate: core.PredicateAnd[T](fs.predicate, core.SelectorCompose[T, R](fs.selector, predicate)),
		selector:  fs.selector,
	}
}

// Enumerator returns a cursor positioned before the first match. As with
// Filter.Enumerator, a non-contiguous source is not iterated until the first
// MoveNext.
func (fs FilterSelect[T, R, S, P, F]) Enumerator() FilterSelectEnumerator[T, R, P, F] {
	e := FilterSelectEnumerator[T, R, P, F]{predicate: fs.predicate, selector: fs.selector, index: -1}
	if view, ok := fs.source.Contiguous(); ok {
		e.view = view
		return e
	}
	e.pull.seq = fs.source.All()
	return e
}

// All returns an iterator over the projected matching elements.
func (fs FilterSelect[T, R, S, P, F]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		if view, ok := fs.source.Contiguous(); ok {
			for i := range view {
				if fs.predicate.Invoke(view[i]) && !yield(fs.selector.Invoke(view[i])) {
					return
				}
			}
			return
		}
		for v := range fs.source.All() {
			if fs.predicate.Invoke(v) && !yield(fs.selector.Invoke(v)) {
				return
			}
		}
	}
}

// FilterSelectEnumerator is a pull cursor over a FilterSelect. The selector
// runs inside MoveNext, so Current may be read any number of times. Copies
// share iteration state under the same rules as FilterEnumerator.
type FilterSelectEnumerator[T, R any, P core.Predicate[T], F core.Func[T, R]] struct {
	predicate P
	selector  F
	view      []T
	index     int
	current   R
	pull      pullCursor[T]
}

// MoveNext advances to the next matching element and reports whether there
// was one.
func (e *FilterSelectEnumerator[T, R, P, F]) MoveNext() bool {
	if e.pull.seq != nil {
		for {
			v, ok := e.pull.next()
			if !ok {
				return false
			}
			if e.predicate.Invoke(v) {
				e.current = e.selector.Invoke(v)
				return true
			}
		}
	}
	for e.index++; e.index < len(e.view); e.index++ {
		if e.predicate.Invoke(e.view[e.index]) {
			e.current = e.selector.Invoke(e.view[e.index])
			return true
		}
	}
	e.index = len(e.view)
	return false
}

// Current returns the projected element at the cursor.
func (e *FilterSelectEnumerator[T, R, P, F]) Current() R {
	return e.current
}

// Close stops the iteration of a non-contiguous source.
func (e *FilterSelectEnumerator[T, R, P, F]) Close() {
	e.pull.close()
}
