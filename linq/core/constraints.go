package core

import "golang.org/x/exp/constraints"

// Number is satisfied by the element types Sum accepts: they support + and
// have 0 as additive identity.
type Number interface {
	constraints.Integer | constraints.Float
}

// Ordered is satisfied by the element types Min, Max and MinMax accept.
type Ordered interface {
	constraints.Ordered
}
