// SPDX-License-Identifier: MIT

package semiring

// MinPlus is the tropical (min, +) semiring over V.
//
// Extend is addition that saturates at Infinity: if either operand is
// Infinity, or an integer sum would pass it, the result is Infinity.
// Best selects the minimum. Identity is 0.
//
// The zero value is usable; NewMinPlus merely caches Infinity.
type MinPlus[V Number] struct {
	inf V
}

// Compile-time assertions for the shipped domains.
var (
	_ Semiring[uint64]  = MinPlus[uint64]{}
	_ Semiring[int64]   = MinPlus[int64]{}
	_ Semiring[float64] = MinPlus[float64]{}
)

// NewMinPlus returns a MinPlus semiring over V.
func NewMinPlus[V Number]() MinPlus[V] {
	return MinPlus[V]{inf: infinity[V]()}
}

// Identity returns 0, the neutral element of Extend.
func (MinPlus[V]) Identity() V {
	return 0
}

// Infinity returns the "no path" value of the domain.
func (m MinPlus[V]) Infinity() V {
	if m.inf == 0 {
		return infinity[V]()
	}

	return m.inf
}

// Extend adds a and b, saturating at Infinity.
// Costs are non-negative, so only upward saturation is checked.
// Complexity: O(1).
func (m MinPlus[V]) Extend(a, b V) V {
	inf := m.Infinity()
	if a == inf || b == inf {
		return inf
	}
	if b > 0 && a > inf-b {
		return inf
	}

	return a + b
}

// Best returns the minimum of values and the index of its first occurrence.
// An empty slice yields (Infinity(), -1). A slice containing only Infinity
// yields (Infinity(), 0); callers detect "no path" by comparing to Infinity.
// Complexity: O(len(values)).
func (m MinPlus[V]) Best(values []V) (V, int) {
	if len(values) == 0 {
		return m.Infinity(), -1
	}
	best, at := values[0], 0
	for i := 1; i < len(values); i++ {
		// strict comparison keeps the lowest index on ties
		if values[i] < best {
			best, at = values[i], i
		}
	}

	return best, at
}
