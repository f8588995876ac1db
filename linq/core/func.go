// Package core defines the building blocks shared by every min-linq
// pipeline: value functors, the Option result carrier, the numeric
// constraints used by the reductions and the error taxonomy.
//
// A value functor is a small struct (usually zero-size) whose type carries
// the per-element computation. Pipelines take functors as type parameters
// constrained by Func, so every instantiation gets its own concrete Invoke
// call that the compiler is free to inline. FuncOf wraps an ordinary closure
// for call sites that choose behavior at runtime; that path pays one indirect
// call per element.
package core

// Func is the by-value value-functor protocol.
type Func[In, Out any] interface {
	Invoke(In) Out
}

// RefFunc is the by-reference value-functor protocol, for element types that
// are expensive to copy. The functor must not retain or modify *In.
type RefFunc[In, Out any] interface {
	InvokeRef(*In) Out
}

// Predicate is a Func returning a bool.
type Predicate[T any] interface {
	Func[T, bool]
}

// FuncOf adapts a plain function to Func.
type FuncOf[In, Out any] func(In) Out

// Invoke implements Func.
func (f FuncOf[In, Out]) Invoke(in In) Out {
	return f(in)
}

// RefFuncOf adapts a plain function taking a pointer to RefFunc.
type RefFuncOf[In, Out any] func(*In) Out

// InvokeRef implements RefFunc.
func (f RefFuncOf[In, Out]) InvokeRef(in *In) Out {
	return f(in)
}

// Pred wraps fn as a predicate functor.
func Pred[T any](fn func(T) bool) FuncOf[T, bool] {
	return fn
}

// Fn wraps fn as a selector functor.
func Fn[In, Out any](fn func(In) Out) FuncOf[In, Out] {
	return fn
}

// ByRef runs a RefFunc wherever a Func is expected. The argument is the
// callee's own copy, so the wrapped functor never observes the caller's
// storage.
type ByRef[In, Out any, F RefFunc[In, Out]] struct {
	Func F
}

// Invoke implements Func.
func (b ByRef[In, Out, F]) Invoke(in In) Out {
	return b.Func.InvokeRef(&in)
}

// Ref wraps fn so it satisfies Func[In, Out].
func Ref[In, Out any, F RefFunc[In, Out]](fn F) ByRef[In, Out, F] {
	return ByRef[In, Out, F]{Func: fn}
}

// Always is the predicate of an unfiltered pipeline.
type Always[T any] struct{}

// Invoke implements Func.
func (Always[T]) Invoke(T) bool { return true }

// Identity is the selector returning its input.
type Identity[T any] struct{}

// Invoke implements Func.
func (Identity[T]) Invoke(v T) T { return v }
