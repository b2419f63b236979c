// SPDX-License-Identifier: MIT

package trace_test

import (
	"fmt"

	"github.com/katalvlaran/spintools/trace"
	"gonum.org/v1/gonum/mat"
)

// ExampleCorrect repairs two sorted traces that cross at row 3.
//
// Scenario:
//
//	a(k) = k, b(k) = 6 − k, sorted per row into (min, max).
//	The kink shows up as a ±2 second difference at index 2, so the tails
//	are exchanged from row 3 on.
func ExampleCorrect() {
	sorted := mat.NewDense(7, 2, []float64{
		0, 6,
		1, 5,
		2, 4,
		3, 3,
		2, 4,
		1, 5,
		0, 6,
	})

	fmt.Println(trace.Swaps(sorted))
	fixed := trace.Correct(sorted)
	fmt.Println(mat.Col(nil, 0, fixed))
	fmt.Println(mat.Col(nil, 1, fixed))
	// Output:
	// [{3 {1 0}}]
	// [0 1 2 3 4 5 6]
	// [6 5 4 3 2 1 0]
}
