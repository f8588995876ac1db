// Package observe provides value-functor decorators for monitoring and
// debugging pipelines: call counters, OpenTelemetry metric recording and
// structured logging. Each decorator satisfies core.Func, so it can wrap a
// predicate or selector anywhere a pipeline accepts one.
//
// Decorators add work to every invocation. Use them for diagnostics and
// tests, not on hot paths that are meant to match a hand-written loop.
package observe

import (
	"sync/atomic"

	"github.com/lguimbarda/min-linq/linq/core"
)

// Counter counts functor invocations. It is safe for concurrent use.
type Counter struct {
	calls atomic.Int64
}

// Calls returns the number of invocations recorded so far.
func (c *Counter) Calls() int64 { return c.calls.Load() }

// Reset sets the count back to zero.
func (c *Counter) Reset() { c.calls.Store(0) }

// Counted records every call to Func in Counter.
type Counted[In, Out any, F core.Func[In, Out]] struct {
	Func    F
	Counter *Counter
}

// Invoke implements core.Func.
func (c Counted[In, Out, F]) Invoke(in In) Out {
	c.Counter.calls.Add(1)
	return c.Func.Invoke(in)
}

// Count wraps fn so that each invocation increments counter.
func Count[In, Out any, F core.Func[In, Out]](fn F, counter *Counter) Counted[In, Out, F] {
	return Counted[In, Out, F]{Func: fn, Counter: counter}
}

// Tapped calls OnInput with each argument before invoking Func.
type Tapped[In, Out any, F core.Func[In, Out]] struct {
	Func    F
	OnInput func(In)
}

// Invoke implements core.Func.
func (t Tapped[In, Out, F]) Invoke(in In) Out {
	t.OnInput(in)
	return t.Func.Invoke(in)
}

// Tap wraps fn so that callback observes every argument.
func Tap[In, Out any, F core.Func[In, Out]](fn F, callback func(In)) Tapped[In, Out, F] {
	return Tapped[In, Out, F]{Func: fn, OnInput: callback}
}
