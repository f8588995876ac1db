package core

// And is the short-circuit conjunction of two predicates over the same
// input. Second is only invoked when First returns true.
type And[T any, P1 Func[T, bool], P2 Func[T, bool]] struct {
	First  P1
	Second P2
}

// Invoke implements Func.
func (a And[T, P1, P2]) Invoke(v T) bool {
	return a.First.Invoke(v) && a.Second.Invoke(v)
}

// PredicateAnd fuses two consecutive filters into one predicate.
func PredicateAnd[T any, P1 Func[T, bool], P2 Func[T, bool]](first P1, second P2) And[T, P1, P2] {
	return And[T, P1, P2]{First: first, Second: second}
}

// Compose tests Predicate against the result of Selector, re-expressing a
// filter on projected values as a filter on source values.
type Compose[T, R any, F Func[T, R], P Func[R, bool]] struct {
	Selector  F
	Predicate P
}

// Invoke implements Func.
func (c Compose[T, R, F, P]) Invoke(v T) bool {
	return c.Predicate.Invoke(c.Selector.Invoke(v))
}

// SelectorCompose builds the predicate v -> predicate(selector(v)).
func SelectorCompose[T, R any, F Func[T, R], P Func[R, bool]](selector F, predicate P) Compose[T, R, F, P] {
	return Compose[T, R, F, P]{Selector: selector, Predicate: predicate}
}
