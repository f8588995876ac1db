// Package container provides the in-memory source kinds min-linq pipelines
// run over: buffer slices (Span), fixed arrays (Array), growable arrays
// (List), segment views (Segment) and arbitrary single-pass sequences (Seq).
//
// Every kind except Seq stores its elements contiguously and hands out a
// zero-copy view through Contiguous, which the terminal operations use for
// direct indexed access and vectorized numeric reductions.
package container

import "iter"

// Source is a container a pipeline can enumerate.
type Source[T any] interface {
	// Contiguous returns a zero-copy view of the elements and true, or
	// nil and false when the storage is not contiguous.
	Contiguous() ([]T, bool)

	// All returns a single-pass iterator over the elements in order.
	All() iter.Seq[T]
}

// Span is a buffer slice. A nil Span is empty.
type Span[T any] []T

// Contiguous implements Source.
func (s Span[T]) Contiguous() ([]T, bool) { return s, true }

// All implements Source.
func (s Span[T]) All() iter.Seq[T] { return spanAll(s) }

// Len returns the number of elements.
func (s Span[T]) Len() int { return len(s) }

// Seq is the fallback source kind for anything that can only be iterated.
type Seq[T any] iter.Seq[T]

// Contiguous implements Source; a Seq is never contiguous.
func (s Seq[T]) Contiguous() ([]T, bool) { return nil, false }

// All implements Source.
func (s Seq[T]) All() iter.Seq[T] { return iter.Seq[T](s) }

func spanAll[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s {
			if !yield(s[i]) {
				return
			}
		}
	}
}
