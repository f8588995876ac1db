package linq

import (
	"iter"

	"github.com/lguimbarda/min-linq/linq/container"
	"github.com/lguimbarda/min-linq/linq/core"
)

// Scans over non-contiguous sources. A range-over-func loop body is a
// closure, and anything it captures moves to the heap for the whole
// function, so these loops live apart from the contiguous paths that
// must stay allocation-free.

func seqCount[T any, S container.Source[T], P core.Predicate[T]](source S, predicate P) int {
	n := 0
	for v := range source.All() {
		if predicate.Invoke(v) {
			n++
		}
	}
	return n
}

func seqFirst[T any, S container.Source[T], P core.Predicate[T]](source S, predicate P) core.Option[T] {
	found := core.None[T]()
	for v := range source.All() {
		if predicate.Invoke(v) {
			found = core.Some(v)
			break
		}
	}
	return found
}

func seqLast[T any, S container.Source[T], P core.Predicate[T]](source S, predicate P) core.Option[T] {
	last := core.None[T]()
	for v := range source.All() {
		if predicate.Invoke(v) {
			last = core.Some(v)
		}
	}
	return last
}

func seqSingle[T any, S container.Source[T], P core.Predicate[T]](source S, predicate P) (core.Option[T], error) {
	found := core.None[T]()
	var err error
	for v := range source.All() {
		if !predicate.Invoke(v) {
			continue
		}
		if found.HasValue() {
			found, err = core.None[T](), core.ErrMoreThanOneElement
			break
		}
		found = core.Some(v)
	}
	return found, err
}

func seqForEach[T, R any, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](source S, predicate P, selector F, fn func(R)) {
	for v := range source.All() {
		if predicate.Invoke(v) {
			fn(selector.Invoke(v))
		}
	}
}

func seqToSlice[T, R any, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](source S, predicate P, selector F) []R {
	var out []R
	for v := range source.All() {
		if predicate.Invoke(v) {
			out = append(out, selector.Invoke(v))
		}
	}
	return out
}

func seqSum[T any, R core.Number, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](source S, predicate P, selector F) R {
	var sum R
	for v := range source.All() {
		if predicate.Invoke(v) {
			sum += selector.Invoke(v)
		}
	}
	return sum
}

func seqBounds[T any, R core.Ordered, S container.Source[T], P core.Predicate[T], F core.Func[T, R]](source S, predicate P, selector F) (core.Bounds[R], bool) {
	var b core.Bounds[R]
	found := false
	for v := range source.All() {
		if predicate.Invoke(v) {
			b, found = extend(b, found, selector.Invoke(v))
		}
	}
	return b, found
}

// pullCursor adapts a push iterator to the enumerator protocol. iter.Pull
// is deferred to the first next call, so a cursor that is never advanced
// starts no coroutine.
type pullCursor[T any] struct {
	seq  iter.Seq[T]
	pull func() (T, bool)
	stop func()
	done bool
}

func (c *pullCursor[T]) next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	if c.pull == nil {
		c.pull, c.stop = iter.Pull(c.seq)
	}
	v, ok := c.pull()
	if !ok {
		c.close()
	}
	return v, ok
}

func (c *pullCursor[T]) close() {
	if c.stop != nil {
		c.stop()
	}
	c.pull, c.stop = nil, nil
	c.done = true
}
