package container

import (
	"fmt"
	"iter"

	"github.com/lguimbarda/min-linq/linq/core"
)

// Segment is a window of count elements of an array starting at offset.
// It references the array; no elements are copied. The zero Segment has no
// array and cannot be used as a pipeline source.
type Segment[T any] struct {
	array  []T
	offset int
	count  int
}

// NewSegment returns the window array[offset:offset+count]. It panics with an
// error wrapping core.ErrOutOfRange if the window is not inside array, and
// with one wrapping core.ErrNilSource if array is nil.
func NewSegment[T any](array []T, offset, count int) Segment[T] {
	if array == nil {
		panic(&core.SourceError{Kind: "segment array", Op: "container.NewSegment"})
	}
	if offset < 0 || count < 0 || offset > len(array)-count {
		panic(fmt.Errorf("container: NewSegment(offset=%d, count=%d) over %d elements: %w",
			offset, count, len(array), core.ErrOutOfRange))
	}
	return Segment[T]{array: array, offset: offset, count: count}
}

// SegmentOf returns a Segment covering all of array.
func SegmentOf[T any](array []T) Segment[T] {
	return NewSegment(array, 0, len(array))
}

// Array returns the backing array, or nil for the zero Segment.
func (s Segment[T]) Array() []T { return s.array }

// Offset returns the index of the first element in the backing array.
func (s Segment[T]) Offset() int { return s.offset }

// Count returns the number of elements in the window.
func (s Segment[T]) Count() int { return s.count }

// At returns the i-th element of the window.
func (s Segment[T]) At(i int) T {
	if i < 0 || i >= s.count {
		panic(fmt.Errorf("container: Segment.At(%d) with count %d: %w", i, s.count, core.ErrOutOfRange))
	}
	return s.array[s.offset+i]
}

// Contiguous implements Source.
func (s Segment[T]) Contiguous() ([]T, bool) {
	return s.array[s.offset : s.offset+s.count : s.offset+s.count], true
}

// All implements Source.
func (s Segment[T]) All() iter.Seq[T] {
	view, _ := s.Contiguous()
	return spanAll(view)
}
