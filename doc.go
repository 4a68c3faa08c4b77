// Package percolate is an in-memory toolkit for site percolation on square
// grids: incremental connectivity, backwash-free fullness queries and Monte
// Carlo threshold estimation.
//
// Everything is organized under three subpackages:
//
//	unionfind/   — weighted quick-union with path halving over a fixed arena
//	percolation/ — the n×n Grid: Open, IsOpen, IsFull, NumberOfOpenSites, Percolates
//	stats/       — parallel, seeded Monte Carlo estimation of the threshold
//
// Quick ASCII example ('#' blocked, 'o' open, '*' full):
//
//	* # #
//	* # o
//	* # o
//
// percolates through the left column; the right column touches the bottom
// edge only, so its sites are open but not full.
//
//	go get github.com/katalvlaran/percolate
package percolate
