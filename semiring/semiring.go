// SPDX-License-Identifier: MIT

package semiring

import "math"

// Number enumerates the numeric domains a cost value may live in.
// Integer domains are 64-bit so that sums of squared differences over large
// templates cannot overflow in practice.
type Number interface {
	uint64 | int64 | float64
}

// Semiring is the contract the cost matrix and the decoder are written against.
//
//   - Extend(a, b) must be associative; it accumulates cost along a path.
//   - Best(values) returns the preferred value and its index; ties resolve to
//     the first occurrence. An empty input yields (Infinity(), -1).
//   - Identity() is neutral for Extend.
//   - Infinity() is absorbing for Extend and never preferred by Best.
//
// Implementations must be free of side effects.
type Semiring[V Number] interface {
	Extend(a, b V) V
	Best(values []V) (V, int)
	Identity() V
	Infinity() V
}

// Ready-made instances for the supported domains.
var (
	// Uint64 is the min-plus semiring over uint64 (the default decoding domain).
	Uint64 = NewMinPlus[uint64]()
	// Int64 is the min-plus semiring over int64.
	Int64 = NewMinPlus[int64]()
	// Float64 is the min-plus semiring over float64 with +Inf as Infinity.
	Float64 = NewMinPlus[float64]()
)

// infinity returns the largest representable value of V:
// math.MaxUint64, math.MaxInt64 or +Inf.
func infinity[V Number]() V {
	var inf V
	switch p := any(&inf).(type) {
	case *uint64:
		*p = math.MaxUint64
	case *int64:
		*p = math.MaxInt64
	case *float64:
		*p = math.Inf(1)
	}

	return inf
}
