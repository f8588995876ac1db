package linq

import (
	"github.com/lguimbarda/min-linq/linq/container"
	"github.com/lguimbarda/min-linq/linq/core"
)

// Terminal operations consume a Filter and produce a result. The ...OrNone
// variants carry the empty-result policy; every other accessor is defined in
// terms of them.

// Count returns the number of matching elements.
func (f Filter[T, S, P]) Count() int {
	view, ok := f.source.Contiguous()
	if !ok {
		return seqCount(f.source, f.predicate)
	}
	if isAlways[T, P]() {
		return len(view)
	}
	n := 0
	for i := range view {
		if f.predicate.Invoke(view[i]) {
			n++
		}
	}
	return n
}

// Any reports whether at least one element matches. It stops at the first
// match.
func (f Filter[T, S, P]) Any() bool {
	return f.FirstOrNone().HasValue()
}

// FirstOrNone returns the first matching element, if any.
func (f Filter[T, S, P]) FirstOrNone() core.Option[T] {
	view, ok := f.source.Contiguous()
	if !ok {
		return seqFirst(f.source, f.predicate)
	}
	for i := range view {
		if f.predicate.Invoke(view[i]) {
			return core.Some(view[i])
		}
	}
	return core.None[T]()
}

// First returns the first matching element, or core.ErrEmptySequence.
func (f Filter[T, S, P]) First() (T, error) {
	return f.FirstOrNone().ValueOrError(core.ErrEmptySequence)
}

// FirstOrDefault returns the first matching element, or the zero value.
func (f Filter[T, S, P]) FirstOrDefault() T {
	return f.FirstOrNone().GetValueOrDefault()
}

// FirstOr returns the first matching element, or fallback.
func (f Filter[T, S, P]) FirstOr(fallback T) T {
	return f.FirstOrNone().GetValueOr(fallback)
}

// LastOrNone returns the last matching element, if any. Contiguous sources
// are scanned from the end.
func (f Filter[T, S, P]) LastOrNone() core.Option[T] {
	view, ok := f.source.Contiguous()
	if !ok {
		return seqLast(f.source, f.predicate)
	}
	for i := len(view) - 1; i >= 0; i-- {
		if f.predicate.Invoke(view[i]) {
			return core.Some(view[i])
		}
	}
	return core.None[T]()
}

// Last returns the last matching element, or core.ErrEmptySequence.
func (f Filter[T, S, P]) Last() (T, error) {
	return f.LastOrNone().ValueOrError(core.ErrEmptySequence)
}

// LastOrDefault returns the last matching element, or the zero value.
func (f Filter[T, S, P]) LastOrDefault() T {
	return f.LastOrNone().GetValueOrDefault()
}

// LastOr returns the last matching element, or fallback.
func (f Filter[T, S, P]) LastOr(fallback T) T {
	return f.LastOrNone().GetValueOr(fallback)
}

// SingleOrNone returns the only matching element, None if there is none,
// and core.ErrMoreThanOneElement as soon as a second match is seen.
func (f Filter[T, S, P]) SingleOrNone() (core.Option[T], error) {
	view, ok := f.source.Contiguous()
	if !ok {
		return seqSingle(f.source, f.predicate)
	}
	found := core.None[T]()
	for i := range view {
		if !f.predicate.Invoke(view[i]) {
			continue
		}
		if found.HasValue() {
			return core.None[T](), core.ErrMoreThanOneElement
		}
		found = core.Some(view[i])
	}
	return found, nil
}

// Single returns the only matching element. It fails with
// core.ErrEmptySequence or core.ErrMoreThanOneElement.
func (f Filter[T, S, P]) Single() (T, error) {
	opt, err := f.SingleOrNone()
	if err != nil {
		var zero T
		return zero, err
	}
	return opt.ValueOrError(core.ErrEmptySequence)
}

// SingleOrDefault returns the only matching element, or the zero value if
// there is none. It fails with core.ErrMoreThanOneElement.
func (f Filter[T, S, P]) SingleOrDefault() (T, error) {
	opt, err := f.SingleOrNone()
	return opt.GetValueOrDefault(), err
}

// SingleOr returns the only matching element, or fallback if there is
// none. It fails with core.ErrMoreThanOneElement.
func (f Filter[T, S, P]) SingleOr(fallback T) (T, error) {
	opt, err := f.SingleOrNone()
	if err != nil {
		var zero T
		return zero, err
	}
	return opt.GetValueOr(fallback), nil
}

// ForEach calls fn for each matching element in order.
func (f Filter[T, S, P]) ForEach(fn func(T)) {
	view, ok := f.source.Contiguous()
	if !ok {
		seqForEach(f.source, f.predicate, core.Identity[T]{}, fn)
		return
	}
	for i := range view {
		if f.predicate.Invoke(view[i]) {
			fn(view[i])
		}
	}
}

// ToSlice returns the matching elements in a new slice.
func (f Filter[T, S, P]) ToSlice() []T {
	view, ok := f.source.Contiguous()
	if !ok {
		return seqToSlice(f.source, f.predicate, core.Identity[T]{})
	}
	if isAlways[T, P]() {
		return append(make([]T, 0, len(view)), view...)
	}
	var out []T
	for i := range view {
		if f.predicate.Invoke(view[i]) {
			out = append(out, view[i])
		}
	}
	return out
}

// ToArray returns the matching elements in a new Array.
func (f Filter[T, S, P]) ToArray() *container.Array[T] {
	return container.ArrayOf(f.ToSlice()...)
}

// ToList returns the matching elements in a new List.
func (f Filter[T, S, P]) ToList() *container.List[T] {
	l := container.NewList[T](0)
	f.ForEach(l.Add)
	return l
}
