// SPDX-License-Identifier: MIT

// Package evolution implements a bounded, derivative-free global minimizer:
// differential evolution in the best1bin flavour, followed by an optional
// Nelder-Mead polish of the best member.
//
// The search runs in the unit hypercube; each coordinate is mapped linearly
// onto its Bound before the objective is called.
//
// Algorithm per run:
//
//	Stage 1: Latin-hypercube initial population of max(5, PopSize·N) members.
//	Stage 2: per generation, draw a dither scale in [MutationMin, MutationMax);
//	         for every member build best + scale·(r0 − r1), cross it over
//	         binomially with the member (rate Recombination, one coordinate
//	         forced) and resample coordinates that left [0, 1].
//	         The trial replaces the member immediately when not worse.
//	Stage 3: stop when std(E) ≤ Atol + Tol·|mean(E)| or after MaxIter
//	         generations.
//	Stage 4: polish the best member with gonum's Nelder-Mead and keep the
//	         polished point only when it is strictly better.
//
// Runs are deterministic: one math/rand stream seeded from Config.Seed
// drives every random draw, so equal inputs give equal results.
package evolution
