package container

import (
	"fmt"
	"iter"

	"github.com/lguimbarda/min-linq/linq/core"
)

// List is a growable array.
//
// Mutating a List while a pipeline built over it is being enumerated is a
// caller error; views handed out by Contiguous are invalidated by growth.
type List[T any] struct {
	items []T
}

// NewList returns an empty List with room for capacity elements.
func NewList[T any](capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{items: make([]T, 0, capacity)}
}

// ListOf returns a List holding a copy of items.
func ListOf[T any](items ...T) *List[T] {
	l := NewList[T](len(items))
	l.items = append(l.items, items...)
	return l
}

// Add appends v.
func (l *List[T]) Add(v T) { l.items = append(l.items, v) }

// AddRange appends every element of vs.
func (l *List[T]) AddRange(vs ...T) { l.items = append(l.items, vs...) }

// At returns the element at index i.
func (l *List[T]) At(i int) T { return l.items[i] }

// Set overwrites the element at index i.
func (l *List[T]) Set(i int, v T) { l.items[i] = v }

// RemoveAt removes the element at index i, shifting later elements down.
func (l *List[T]) RemoveAt(i int) {
	if i < 0 || i >= len(l.items) {
		panic(fmt.Errorf("container: List.RemoveAt(%d) with length %d: %w", i, len(l.items), core.ErrOutOfRange))
	}
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
}

// Clear removes all elements and keeps the capacity.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// Cap returns the number of elements the List can hold without growing.
func (l *List[T]) Cap() int { return cap(l.items) }

// Contiguous implements Source.
func (l *List[T]) Contiguous() ([]T, bool) { return l.items, true }

// All implements Source.
func (l *List[T]) All() iter.Seq[T] { return spanAll(l.items) }
