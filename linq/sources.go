package linq

import (
	"iter"

	"github.com/lguimbarda/min-linq/linq/container"
	"github.com/lguimbarda/min-linq/linq/core"
)

// Entry points, one set per container kind. Go cannot overload on the
// argument type, so each kind gets its own From/Where/Select trio.
//
// Buffer slices use the unsuffixed names. A nil slice is an empty source.
// Every other kind panics with a *core.SourceError (matching
// core.ErrNilSource) when the container is absent.

// From returns the unfiltered pipeline over items.
func From[T any](items []T) Filter[T, container.Span[T], core.Always[T]] {
	return Filter[T, container.Span[T], core.Always[T]]{source: items}
}

// Where returns the items matching predicate.
func Where[T any, P core.Predicate[T]](items []T, predicate P) Filter[T, container.Span[T], P] {
	return Filter[T, container.Span[T], P]{source: items, predicate: predicate}
}

// Select returns the projection of every element of items.
func Select[T, R any, F core.Func[T, R]](items []T, selector F) FilterSelect[T, R, container.Span[T], core.Always[T], F] {
	return FilterSelect[T, R, container.Span[T], core.Always[T], F]{source: items, selector: selector}
}

// FromList returns the unfiltered pipeline over l.
func FromList[T any](l *container.List[T]) Filter[T, *container.List[T], core.Always[T]] {
	mustList(l, "linq.FromList")
	return Filter[T, *container.List[T], core.Always[T]]{source: l}
}

// WhereList returns the elements of l matching predicate.
func WhereList[T any, P core.Predicate[T]](l *container.List[T], predicate P) Filter[T, *container.List[T], P] {
	mustList(l, "linq.WhereList")
	return Filter[T, *container.List[T], P]{source: l, predicate: predicate}
}

// SelectList returns the projection of every element of l.
func SelectList[T, R any, F core.Func[T, R]](l *container.List[T], selector F) FilterSelect[T, R, *container.List[T], core.Always[T], F] {
	mustList(l, "linq.SelectList")
	return FilterSelect[T, R, *container.List[T], core.Always[T], F]{source: l, selector: selector}
}

// FromArray returns the unfiltered pipeline over a.
func FromArray[T any](a *container.Array[T]) Filter[T, *container.Array[T], core.Always[T]] {
	mustArray(a, "linq.FromArray")
	return Filter[T, *container.Array[T], core.Always[T]]{source: a}
}

// WhereArray returns the elements of a matching predicate.
func WhereArray[T any, P core.Predicate[T]](a *container.Array[T], predicate P) Filter[T, *container.Array[T], P] {
	mustArray(a, "linq.WhereArray")
	return Filter[T, *container.Array[T], P]{source: a, predicate: predicate}
}

// SelectArray returns the projection of every element of a.
func SelectArray[T, R any, F core.Func[T, R]](a *container.Array[T], selector F) FilterSelect[T, R, *container.Array[T], core.Always[T], F] {
	mustArray(a, "linq.SelectArray")
	return FilterSelect[T, R, *container.Array[T], core.Always[T], F]{source: a, selector: selector}
}

// FromSegment returns the unfiltered pipeline over s.
func FromSegment[T any](s container.Segment[T]) Filter[T, container.Segment[T], core.Always[T]] {
	mustSegment(s, "linq.FromSegment")
	return Filter[T, container.Segment[T], core.Always[T]]{source: s}
}

// WhereSegment returns the elements of s matching predicate.
func WhereSegment[T any, P core.Predicate[T]](s container.Segment[T], predicate P) Filter[T, container.Segment[T], P] {
	mustSegment(s, "linq.WhereSegment")
	return Filter[T, container.Segment[T], P]{source: s, predicate: predicate}
}

// SelectSegment returns the projection of every element of s.
func SelectSegment[T, R any, F core.Func[T, R]](s container.Segment[T], selector F) FilterSelect[T, R, container.Segment[T], core.Always[T], F] {
	mustSegment(s, "linq.SelectSegment")
	return FilterSelect[T, R, container.Segment[T], core.Always[T], F]{source: s, selector: selector}
}

// FromSeq returns the unfiltered pipeline over seq. seq is enumerated once
// per terminal operation.
func FromSeq[T any](seq iter.Seq[T]) Filter[T, container.Seq[T], core.Always[T]] {
	mustSeq(seq, "linq.FromSeq")
	return Filter[T, container.Seq[T], core.Always[T]]{source: container.Seq[T](seq)}
}

// WhereSeq returns the elements of seq matching predicate.
func WhereSeq[T any, P core.Predicate[T]](seq iter.Seq[T], predicate P) Filter[T, container.Seq[T], P] {
	mustSeq(seq, "linq.WhereSeq")
	return Filter[T, container.Seq[T], P]{source: container.Seq[T](seq), predicate: predicate}
}

// SelectSeq returns the projection of every element of seq.
func SelectSeq[T, R any, F core.Func[T, R]](seq iter.Seq[T], selector F) FilterSelect[T, R, container.Seq[T], core.Always[T], F] {
	mustSeq(seq, "linq.SelectSeq")
	return FilterSelect[T, R, container.Seq[T], core.Always[T], F]{source: container.Seq[T](seq), selector: selector}
}

func mustList[T any](l *container.List[T], op string) {
	if l == nil {
		panic(&core.SourceError{Kind: "list", Op: op})
	}
}

func mustArray[T any](a *container.Array[T], op string) {
	if a == nil {
		panic(&core.SourceError{Kind: "array", Op: op})
	}
}

func mustSegment[T any](s container.Segment[T], op string) {
	if s.Array() == nil {
		panic(&core.SourceError{Kind: "segment", Op: op})
	}
}

func mustSeq[T any](seq iter.Seq[T], op string) {
	if seq == nil {
		panic(&core.SourceError{Kind: "sequence", Op: op})
	}
}
