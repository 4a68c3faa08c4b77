// SPDX-License-Identifier: MIT

// Package percolation models an n-by-n grid of sites, each open or blocked,
// and tracks top-to-bottom connectivity incrementally as sites open.
//
// What:
//
//   - Grid keeps one open flag per site plus two union-find forests over the
//     same flat site index space.
//   - The "full" forest carries a virtual top node and a virtual bottom node;
//     it answers Percolates with a single root comparison.
//   - The "top" forest carries only the virtual top node; IsFull queries it,
//     so a bottom-up connection through the virtual bottom node can never make
//     an unrelated site look full (no backwash).
//
// Coordinates:
//
//   - Public methods take 1-indexed (row, col) in [1,n]×[1,n].
//   - Site (row, col) lives at flat index (row-1)*n + (col-1); virtual top is
//     n², virtual bottom is n²+1.
//
// Boundary wiring is lazy: a top-row site joins the virtual top node (and a
// bottom-row site the virtual bottom node) only when it opens.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              amortized O(α(n²)).
//   - IsOpen, counters:  O(1).
//   - IsFull/Percolates: amortized O(α(n²)).
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0 or a coordinate outside [1,n].
//
// A Grid is owned by a single goroutine. Parallel simulations build one Grid
// per trial.
package percolation
