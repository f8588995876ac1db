package container

import (
	"fmt"
	"iter"

	"github.com/lguimbarda/min-linq/linq/core"
)

// Array is a fixed-length container. Its length is set at construction and
// never changes; elements may be overwritten with Set.
type Array[T any] struct {
	items []T
}

// NewArray returns an Array of n zero values.
func NewArray[T any](n int) *Array[T] {
	if n < 0 {
		panic(fmt.Errorf("container: NewArray(%d): %w", n, core.ErrOutOfRange))
	}
	return &Array[T]{items: make([]T, n)}
}

// ArrayOf returns an Array holding a copy of items.
func ArrayOf[T any](items ...T) *Array[T] {
	a := &Array[T]{items: make([]T, len(items))}
	copy(a.items, items)
	return a
}

// Empty returns an Array of length zero.
func Empty[T any]() *Array[T] {
	return &Array[T]{items: []T{}}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.items) }

// At returns the element at index i.
func (a *Array[T]) At(i int) T { return a.items[i] }

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) { a.items[i] = v }

// Contiguous implements Source.
func (a *Array[T]) Contiguous() ([]T, bool) { return a.items, true }

// All implements Source.
func (a *Array[T]) All() iter.Seq[T] { return spanAll(a.items) }
