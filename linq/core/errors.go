package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned by First, Last, Single, Min, Max and
	// MinMax when no element matches.
	ErrEmptySequence = errors.New("sequence contains no matching element")

	// ErrMoreThanOneElement is returned by the Single family as soon as a
	// second matching element is found.
	ErrMoreThanOneElement = errors.New("sequence contains more than one matching element")

	// ErrNoValue is the cause of the panic raised by Option.Value on None.
	ErrNoValue = errors.New("option has no value")

	// ErrNilSource is the cause of the panic raised when a pipeline is built
	// over an absent container.
	ErrNilSource = errors.New("source is nil")

	// ErrOutOfRange is the cause of the panic raised when a view is created
	// outside the bounds of its container.
	ErrOutOfRange = errors.New("index out of range")
)

// SourceError describes a pipeline built over an absent container.
// It matches ErrNilSource with errors.Is.
type SourceError struct {
	Kind string // container kind, e.g. "list" or "segment"
	Op   string // entry point that rejected the source
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s %v", e.Op, e.Kind, ErrNilSource)
}

// Unwrap returns ErrNilSource.
func (e *SourceError) Unwrap() error {
	return ErrNilSource
}
