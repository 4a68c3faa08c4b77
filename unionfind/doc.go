// SPDX-License-Identifier: MIT

// Package unionfind provides a disjoint-set forest over a fixed universe of
// integer identifiers [0, n).
//
// What:
//
//   - UnionFind stores parent links and subtree sizes in two flat slices
//     (arena indexing); no per-node allocation.
//   - Union is weighted by set size; Find applies path halving.
//   - Together they give amortized O(α(n)) per operation.
//
// Why:
//
//   - Incremental connectivity: percolation, dynamic components,
//     Kruskal-style edge filtering.
//
// Errors:
//
//   - ErrInvalidSize: universe size below 1.
//   - ErrOutOfRange: identifier outside [0, n).
//
// A UnionFind is not safe for concurrent use; Find mutates the forest.
package unionfind
