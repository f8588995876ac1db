package linq

import (
	"github.com/lguimbarda/min-linq/linq/container"
	"github.com/lguimbarda/min-linq/linq/core"
)

// Count returns the number of matching elements. The selector is not run.
func (fs FilterSelect[T, R, S, P, F]) Count() int {
	return Filter[T, S, P]{source: fs.source, predicate: fs.predicate}.Count()
}

// Any reports whether at least one element matches. The selector is not run.
func (fs FilterSelect[T, R, S, P, F]) Any() bool {
	return Filter[T, S, P]{source: fs.source, predicate: fs.predicate}.Any()
}

// FirstOrNone returns the projection of the first matching element, if any.
func (fs FilterSelect[T, R, S, P, F]) FirstOrNone() core.Option[R] {
	view, ok := fs.source.Contiguous()
	if !ok {
		if v, found := seqFirst(fs.source, fs.predicate).Get(); found {
			return core.Some(fs.selector.Invoke(v))
		}
		return core.None[R]()
	}
	for i := range view {
		if fs.predicate.Invoke(view[i]) {
			return core.Some(fs.selector.Invoke(view[i]))
		}
	}
	return core.None[R]()
}

// First returns the projection of the first matching element, or
// core.ErrEmptySequence.
func (fs FilterSelect[T, R, S, P, F]) First() (R, error) {
	return fs.FirstOrNone().ValueOrError(core.ErrEmptySequence)
}

// FirstOrDefault returns the projection of the first matching element, or
// the zero value.
func (fs FilterSelect[T, R, S, P, F]) FirstOrDefault() R {
	return fs.FirstOrNone().GetValueOrDefault()
}

// FirstOr returns the projection of the first matching element, or fallback.
func (fs FilterSelect[T, R, S, P, F]) FirstOr(fallback R) R {
	return fs.FirstOrNone().GetValueOr(fallback)
}

// LastOrNone returns the projection of the last matching element, if any.
// Only that element is projected.
func (fs FilterSelect[T, R, S, P, F]) LastOrNone() core.Option[R] {
	last := Filter[T, S, P]{source: fs.source, predicate: fs.predicate}.LastOrNone()
	if v, ok := last.Get(); ok {
		return core.Some(fs.selector.Invoke(v))
	}
	return core.None[R]()
}

// Last returns the projection of the last matching element, or
// core.ErrEmptySequence.
func (fs FilterSelect[T, R, S, P, F]) Last() (R, error) {
	return fs.LastOrNone().ValueOrError(core.ErrEmptySequence)
}

// LastOrDefault returns the projection of the last matching element, or the
// zero value.
func (fs FilterSelect[T, R, S, P, F]) LastOrDefault() R {
	return fs.LastOrNone().GetValueOrDefault()
}

// LastOr returns the projection of the last matching element, or fallback.
func (fs FilterSelect[T, R, S, P, F]) LastOr(fallback R) R {
	return fs.LastOrNone().GetValueOr(fallback)
}

// SingleOrNone returns the projection of the only matching element, None if
// there is none, and core.ErrMoreThanOneElement as soon as a second match is
// seen.
func (fs FilterSelect[T, R, S, P, F]) SingleOrNone() (core.Option[R], error) {
	single, err := Filter[T, S, P]{source: fs.source, predicate: fs.predicate}.SingleOrNone()
	if err != nil {
		return core.None[R](), err
	}
	if v, ok := single.Get(); ok {
		return core.Some(fs.selector.Invoke(v)), nil
	}
	return core.None[R](), nil
}

// Single returns the projection of the only matching element. It fails with
// core.ErrEmptySequence or core.ErrMoreThanOneElement.
func (fs FilterSelect[T, R, S, P, F]) Single() (R, error) {
	opt, err := fs.SingleOrNone()
	if err != nil {
		var zero R
		return zero, err
	}
	return opt.ValueOrError(core.ErrEmptySequence)
}

// SingleOrDefault returns the projection of the only matching element, or
// the zero value if there is none. It fails with core.ErrMoreThanOneElement.
func (fs FilterSelect[T, R, S, P, F]) SingleOrDefault() (R, error) {
	opt, err := fs.SingleOrNone()
	return opt.GetValueOrDefault(), err
}

// SingleOr returns the projection of the only matching element, or fallback
// if there is none. It fails with core.ErrMoreThanOneElement.
func (fs FilterSelect[T, R, S, P, F]) SingleOr(fallback R) (R, error) {
	opt, err := fs.SingleOrNone()
	if err != nil {
		var zero R
		return zero, err
	}
	return opt.GetValueOr(fallback), nil
}

// ForEach calls fn with the projection of each matching element in order.
func (fs FilterSelect[T, R, S, P, F]) ForEach(fn func(R)) {
	view, ok := fs.source.Contiguous()
	if !ok {
		seqForEach(fs.source, fs.predicate, fs.selector, fn)
		return
	}
	for i := range view {
		if fs.predicate.Invoke(view[i]) {
			fn(fs.selector.Invoke(view[i]))
		}
	}
}

// ToSlice returns the projected matching elements in a new slice.
func (fs FilterSelect[T, R, S, P, F]) ToSlice() []R {
	view, ok := fs.source.Contiguous()
	if !ok {
		return seqToSlice(fs.source, fs.predicate, fs.selector)
	}
	if isAlways[T, P]() {
		out := make([]R, len(view))
		for i := range view {
			out[i] = fs.selector.Invoke(view[i])
		}
		return out
	}
	var out []R
	for i := range view {
		if fs.predicate.Invoke(view[i]) {
			out = append(out, fs.selector.Invoke(view[i]))
		}
	}
	return out
}

// ToArray returns the projected matching elements in a new Array.
func (fs FilterSelect[T, R, S, P, F]) ToArray() *container.Array[R] {
	return container.ArrayOf(fs.ToSlice()...)
}

// ToList returns the projected matching elements in a new List.
func (fs FilterSelect[T, R, S, P, F]) ToList() *container.List[R] {
	l := container.NewList[R](0)
	fs.ForEach(l.Add)
	return l
}
