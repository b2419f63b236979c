// SPDX-License-Identifier: MIT

package evolution

import "math/rand"

// fallbackSeed replaces a zero Config.Seed so that the zero seed is still a
// fixed, reproducible stream.
const fallbackSeed int64 = 1

// rngFromSeed returns the deterministic stream for seed.
// math/rand.Rand is not goroutine-safe; one run owns one stream.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}

	return rand.New(rand.NewSource(seed))
}

// shuffleInts is an in-place Fisher–Yates shuffle.
//
// Complexity: O(n).
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permutation returns a shuffled 0..n-1.
func permutation(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleInts(p, rng)

	return p
}
