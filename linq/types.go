package linq

import (
	"github.com/lguimbarda/min-linq/linq/core"
)

// Type aliases for core abstractions.
// These allow users to build pipelines without importing core directly.
type (
	// Func is the by-value value-functor protocol.
	Func[In, Out any] = core.Func[In, Out]

	// Predicate is a Func returning a bool.
	Predicate[T any] = core.Predicate[T]

	// FuncOf adapts a closure to Func.
	FuncOf[In, Out any] = core.FuncOf[In, Out]

	// Option holds zero or one value.
	Option[T any] = core.Option[T]

	// Bounds is the result of MinMax.
	Bounds[T any] = core.Bounds[T]
)

// Errors returned or raised by pipelines.
var (
	ErrEmptySequence      = core.ErrEmptySequence
	ErrMoreThanOneElement = core.ErrMoreThanOneElement
	ErrNoValue            = core.ErrNoValue
	ErrNilSource          = core.ErrNilSource
)

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return core.Some(v)
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return core.None[T]()
}

// Pred wraps a closure as a predicate functor.
func Pred[T any](fn func(T) bool) FuncOf[T, bool] {
	return core.Pred(fn)
}

// Fn wraps a closure as a selector functor.
func Fn[In, Out any](fn func(In) Out) FuncOf[In, Out] {
	return core.Fn(fn)
}
