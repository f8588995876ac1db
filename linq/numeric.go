package linq

import (
	"github.com/lguimbarda/min-linq/linq/container"
	"github.com/lguimbarda/min-linq/linq/core"
	"github.com/lguimbarda/min-linq/linq/internal/vector"
)

// Numeric reductions need a constraint on the element type, which Go
// methods cannot add, so they are package functions. The Filter variants
// hand unfiltered contiguous sources to the vector backend; everything else
// is a single scan.

// Sum returns the sum of the matching elements, or 0 if there are none.
func Sum[T core.Number, S container.Source[T], P core.Predicate[T]](f Filter[T, S, P]) T {
	view, ok := f.source.Contiguous()
	if !ok {
		return seqSum(f.source, f.predicate, core.Identity[T]{})
	}
	if isAlways[T, P]() {
		return vector.Sum(view)
	}
	var sum T
	for i := range view {
		if f.predicate.Invoke(view[i]) {
			sum += view[i]
		}
	}
	return sum
}

// SumSelect returns the sum of the projected matching elements, or 0 if
// there are none.
func SumSelect[T any, R core.Number, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](fs FilterSelect[T, R, S, P, F]) R {
	view, ok := fs.source.Contiguous()
	if !ok {
		return seqSum(fs.source, fs.predicate, fs.selector)
	}
	var sum R
	for i := range view {
		if fs.predicate.Invoke(view[i]) {
			sum += fs.selector.Invoke(view[i])
		}
	}
	return sum
}

// MinOrNone returns the smallest matching element, if any.
func MinOrNone[T core.Ordered, S container.Source[T], P core.Predicate[T]](f Filter[T, S, P]) core.Option[T] {
	if view, ok := f.source.Contiguous(); ok && isAlways[T, P]() {
		if m, ok := vector.Min(view); ok {
			return core.Some(m)
		}
		return core.None[T]()
	}
	b, found := filterBounds(f)
	if !found {
		return core.None[T]()
	}
	return core.Some(b.Min)
}

// Min returns the smallest matching element, or core.ErrEmptySequence.
func Min[T core.Ordered, S container.Source[T], P core.Predicate[T]](f Filter[T, S, P]) (T, error) {
	return MinOrNone(f).ValueOrError(core.ErrEmptySequence)
}

// MaxOrNone returns the largest matching element, if any.
func MaxOrNone[T core.Ordered, S container.Source[T], P core.Predicate[T]](f Filter[T, S, P]) core.Option[T] {
	if view, ok := f.source.Contiguous(); ok && isAlways[T, P]() {
		if m, ok := vector.Max(view); ok {
			return core.Some(m)
		}
		return core.None[T]()
	}
	b, found := filterBounds(f)
	if !found {
		return core.None[T]()
	}
	return core.Some(b.Max)
}

// Max returns the largest matching element, or core.ErrEmptySequence.
func Max[T core.Ordered, S container.Source[T], P core.Predicate[T]](f Filter[T, S, P]) (T, error) {
	return MaxOrNone(f).ValueOrError(core.ErrEmptySequence)
}

// MinMaxOrNone returns both extremes of the matching elements in one pass,
// if there are any.
func MinMaxOrNone[T core.Ordered, S container.Source[T], P core.Predicate[T]](f Filter[T, S, P]) core.Option[core.Bounds[T]] {
	if view, ok := f.source.Contiguous(); ok && isAlways[T, P]() {
		if lo, hi, ok := vector.MinMax(view); ok {
			return core.Some(core.Bounds[T]{Min: lo, Max: hi})
		}
		return core.None[core.Bounds[T]]()
	}
	b, found := filterBounds(f)
	if !found {
		return core.None[core.Bounds[T]]()
	}
	return core.Some(b)
}

// MinMax returns both extremes of the matching elements, or
// core.ErrEmptySequence.
func MinMax[T core.Ordered, S container.Source[T], P core.Predicate[T]](f Filter[T, S, P]) (core.Bounds[T], error) {
	return MinMaxOrNone(f).ValueOrError(core.ErrEmptySequence)
}

// MinSelectOrNone returns the smallest projected matching element, if any.
func MinSelectOrNone[T any, R core.Ordered, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](fs FilterSelect[T, R, S, P, F]) core.Option[R] {
	b, found := selectBounds(fs)
	if !found {
		return core.None[R]()
	}
	return core.Some(b.Min)
}

// MinSelect returns the smallest projected matching element, or
// core.ErrEmptySequence.
func MinSelect[T any, R core.Ordered, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](fs FilterSelect[T, R, S, P, F]) (R, error) {
	return MinSelectOrNone(fs).ValueOrError(core.ErrEmptySequence)
}

// MaxSelectOrNone returns the largest projected matching element, if any.
func MaxSelectOrNone[T any, R core.Ordered, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](fs FilterSelect[T, R, S, P, F]) core.Option[R] {
	b, found := selectBounds(fs)
	if !found {
		return core.None[R]()
	}
	return core.Some(b.Max)
}

// MaxSelect returns the largest projected matching element, or
// core.ErrEmptySequence.
func MaxSelect[T any, R core.Ordered, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](fs FilterSelect[T, R, S, P, F]) (R, error) {
	return MaxSelectOrNone(fs).ValueOrError(core.ErrEmptySequence)
}

// MinMaxSelectOrNone returns both extremes of the projected matching
// elements in one pass, if there are any.
func MinMaxSelectOrNone[T any, R core.Ordered, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](fs FilterSelect[T, R, S, P, F]) core.Option[core.Bounds[R]] {
	b, found := selectBounds(fs)
	if !found {
		return core.None[core.Bounds[R]]()
	}
	return core.Some(b)
}

// MinMaxSelect returns both extremes of the projected matching elements, or
// core.ErrEmptySequence.
func MinMaxSelect[T any, R core.Ordered, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](fs FilterSelect[T, R, S, P, F]) (core.Bounds[R], error) {
	return MinMaxSelectOrNone(fs).ValueOrError(core.ErrEmptySequence)
}

// filterBounds tracks the running min and max of the matching elements.
func filterBounds[T core.Ordered, S container.Source[T], P core.Predicate[T]](f Filter[T, S, P]) (core.Bounds[T], bool) {
	view, ok := f.source.Contiguous()
	if !ok {
		return seqBounds(f.source, f.predicate, core.Identity[T]{})
	}
	var b core.Bounds[T]
	found := false
	for i := range view {
		if f.predicate.Invoke(view[i]) {
			b, found = extend(b, found, view[i])
		}
	}
	return b, found
}

// selectBounds tracks the running min and max of the projected matching
// elements.
func selectBounds[T any, R core.Ordered, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](fs FilterSelect[T, R, S, P, F]) (core.Bounds[R], bool) {
	view, ok := fs.source.Contiguous()
	if !ok {
		return seqBounds(fs.source, fs.predicate, fs.selector)
	}
	var b core.Bounds[R]
	found := false
	for i := range view {
		if fs.predicate.Invoke(view[i]) {
			b, found = extend(b, found, fs.selector.Invoke(view[i]))
		}
	}
	return b, found
}

func extend[T core.Ordered](b core.Bounds[T], found bool, v T) (core.Bounds[T], bool) {
	if !found {
		return core.Bounds[T]{Min: v, Max: v}, true
	}
	if v < b.Min {
		b.Min = v
	}
	if v > b.Max {
		b.Max = v
	}
	return b, true
}
