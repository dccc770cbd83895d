package semiring_test

import (
	"fmt"

	"github.com/ArthurGoodman/text-recognizer/semiring"
)

// ExampleMinPlus shows path extension and best-of selection over uint64 costs.
func ExampleMinPlus() {
	sr := semiring.NewMinPlus[uint64]()

	// two paths reaching the same node
	viaA := sr.Extend(sr.Extend(sr.Identity(), 10), 5)
	viaB := sr.Extend(sr.Identity(), 12)

	best, at := sr.Best([]uint64{viaA, viaB})
	fmt.Println(best, at)
	fmt.Println(sr.Extend(sr.Infinity(), 1) == sr.Infinity())
	// Output:
	// 12 1
	// true
}
