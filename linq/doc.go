// Package linq provides allocation-free, composable filter/project/reduce
// pipelines over in-memory containers that run as fast as the equivalent
// hand-written loop.
//
// A pipeline starts at an entry point for its container kind (Where,
// WhereList, WhereArray, WhereSegment, WhereSeq and the matching Select and
// From functions) and is consumed by a terminal operation (Count, Any,
// First, Single, Last, Sum, Min, Max, MinMax, ToSlice, ...).
//
// Predicates and selectors are value functors: small structs satisfying
// core.Func whose type is a type parameter of the pipeline, so each call
// site compiles to a direct call. core.Pred and core.Fn wrap closures when
// the behavior is only known at runtime.
//
// Chained stages are fused instead of nested:
//
//   - WhereWhere(Filter, p) returns a Filter over the same source whose
//     predicate is core.PredicateAnd(existing, p);
//   - WhereSelect(Filter, f) returns a FilterSelect over the same source
//     with the same predicate and selector f;
//   - WhereSelectWhere(FilterSelect, p) returns a FilterSelect over the same
//     source and selector whose predicate is
//     core.PredicateAnd(existing, core.SelectorCompose(f, p)).
//
// Every pipeline therefore makes exactly one pass over its source. Deeper
// fusion (project after project) is not provided; compose selectors at the
// call site instead.
//
// Example:
//
//	type isEven struct{}
//
//	func (isEven) Invoke(n int) bool { return n%2 == 0 }
//
//	type double struct{}
//
//	func (double) Invoke(n int) int { return n * 2 }
//
//	evens := linq.Where([]int{1, 2, 3, 4, 5, 6}, isEven{})
//	sum := linq.SumSelect(linq.WhereSelect[int, int](evens, double{})) // 24
//
// Pipelines hold a reference to their source and a copy of their functors.
// They are immutable values and may be copied and enumerated any number of
// times; each enumeration has its own cursor. Mutating the source while an
// enumeration is in progress is a caller error that is not detected.
package linq
