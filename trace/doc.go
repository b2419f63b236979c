// SPDX-License-Identifier: MIT

// Package trace repairs eigenvalue traces that were sorted independently at
// every sweep point.
//
// Sorting per point relabels levels wherever two of them cross: the column
// that held the lower level before the crossing holds the other level after
// it. Correct re-identifies the physically continuous traces.
//
// Algorithm outline (rows = sweep points, columns = traces):
//  1. d2[k][c] = x[k+2][c] − 2x[k+1][c] + x[k][c] (second difference).
//  2. limit = mean(|d2|) + std(d2) unless WithThreshold overrides it.
//  3. At each k, columns with d2 > limit ("upper") are paired with columns
//     with d2 < −limit ("lower"), both in ascending column order.
//  4. Walking k upwards, a pair set is applied unless k+1 carries the very
//     same pair set (one crossing smeared over two samples). Applying a pair
//     swaps rows k+1… of the two traces currently holding those sorted
//     columns and updates the column → trace identity map, so consecutive
//     crossings compose.
//
// There is no error path. Pathological inputs (noise everywhere above the
// threshold) degrade into spurious swaps.
package trace
