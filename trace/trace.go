// SPDX-License-Identifier: MIT

package trace

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const panicThresholdInvalid = "trace: WithThreshold: threshold must be finite and >= 0"

// Option configures Correct and Swaps.
type Option func(*options)

type options struct {
	threshold    float64
	hasThreshold bool
}

// WithThreshold fixes the anomaly threshold on |d2| instead of deriving it
// from the data. Panics on negative or non-finite values.
func WithThreshold(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) {
		o.threshold = limit
		o.hasThreshold = true
	}
}

// Pair is one pair of sorted columns whose anomalies co-occur.
type Pair struct {
	Upper int // column with d2 > limit
	Lower int // column with d2 < −limit
}

// Swap records one applied exchange: from sweep row Row onwards the tails of
// the two traces that held sorted columns Pair.Upper and Pair.Lower were
// exchanged.
type Swap struct {
	Row  int
	Pair Pair
}

// SecondDifference returns the (rows−2)×cols matrix of second differences
// along the sweep axis, or nil when data has fewer than three rows.
func SecondDifference(data mat.Matrix) *mat.Dense {
	r, c := data.Dims()
	if r < 3 || c == 0 {
		return nil
	}
	d2 := mat.NewDense(r-2, c, nil)
	for k := 0; k < r-2; k++ {
		for j := 0; j < c; j++ {
			d2.Set(k, j, data.At(k+2, j)-2*data.At(k+1, j)+data.At(k, j))
		}
	}

	return d2
}

// DefaultThreshold returns mean(|d2|) + std(d2) over all entries, the
// population standard deviation being used. It returns 0 for a nil or empty
// d2, including the nil *mat.Dense SecondDifference yields for short input.
func DefaultThreshold(d2 mat.Matrix) float64 {
	if d2 == nil {
		return 0
	}
	if d, ok := d2.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return 0
	}
	r, c := d2.Dims()
	vals := make([]float64, 0, r*c)
	abs := make([]float64, 0, r*c)
	for k := 0; k < r; k++ {
		for j := 0; j < c; j++ {
			v := d2.At(k, j)
			vals = append(vals, v)
			abs = append(abs, math.Abs(v))
		}
	}
	if len(vals) == 0 {
		return 0
	}
	_, variance := stat.PopMeanVariance(vals, nil)

	return stat.Mean(abs, nil) + math.Sqrt(variance)
}

// Correct returns a copy of data whose columns follow continuous traces.
// data is not modified.
//
// Detection only sees curvature. The peak of a genuine avoided crossing,
// such as ±√(1+x²) sampled coarsely, exceeds the default threshold and is
// swapped like a crossing; the result then carries a jump that a second
// call swaps back, so Correct is idempotent only on inputs whose curvature
// stays under the threshold. Use WithThreshold when gaps are expected.
//
// Complexity: O(rows·cols) for detection plus O(rows) per applied swap.
func Correct(data mat.Matrix, opts ...Option) *mat.Dense {
	out := mat.DenseCopyOf(data)
	r, c := out.Dims()
	if r < 3 || c < 2 {
		return out
	}

	// ids[col] is the row-of-output trace currently holding sorted column col.
	ids := make([]int, c)
	for j := range ids {
		ids[j] = j
	}
	for _, sw := range detect(data, opts) {
		a, b := ids[sw.Pair.Upper], ids[sw.Pair.Lower]
		for k := sw.Row; k < r; k++ {
			va, vb := out.At(k, a), out.At(k, b)
			out.Set(k, a, vb)
			out.Set(k, b, va)
		}
		ids[sw.Pair.Upper], ids[sw.Pair.Lower] = b, a
	}

	return out
}

// Swaps returns the exchanges Correct would apply, in application order.
func Swaps(data mat.Matrix, opts ...Option) []Swap {
	return detect(data, opts)
}

// detect finds anomalous indices, pairs their columns and applies the
// same-pair-at-next-index rule.
func detect(data mat.Matrix, opts []Option) []Swap {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	d2 := SecondDifference(data)
	if d2 == nil {
		return nil
	}
	limit := o.threshold
	if !o.hasThreshold {
		limit = DefaultThreshold(d2)
	}

	pairs := anomalyPairs(d2, limit)
	indices := make([]int, 0, len(pairs))
	for k := range pairs {
		indices = append(indices, k)
	}
	sort.Ints(indices)

	var swaps []Swap
	for _, k := range indices {
		if next, ok := pairs[k+1]; ok && samePairs(next, pairs[k]) {
			continue
		}
		for _, p := range pairs[k] {
			swaps = append(swaps, Swap{Row: k + 1, Pair: p})
		}
	}

	return swaps
}

// anomalyPairs maps every index with at least one complete pair to its pairs.
func anomalyPairs(d2 *mat.Dense, limit float64) map[int][]Pair {
	r, c := d2.Dims()
	out := make(map[int][]Pair)
	var upper, lower []int
	for k := 0; k < r; k++ {
		upper, lower = upper[:0], lower[:0]
		for j := 0; j < c; j++ {
			switch v := d2.At(k, j); {
			case v > limit:
				upper = append(upper, j)
			case v < -limit:
				lower = append(lower, j)
			}
		}
		n := min(len(upper), len(lower))
		if n == 0 {
			continue
		}
		ps := make([]Pair, n)
		for i := 0; i < n; i++ {
			ps[i] = Pair{Upper: upper[i], Lower: lower[i]}
		}
		out[k] = ps
	}

	return out
}

func samePairs(a, b []Pair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
