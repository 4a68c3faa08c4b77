// SPDX-License-Identifier: MIT

package percolation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/percolate/unionfind"
)

const (
	methodNew    = "New"
	methodOpen   = "Open"
	methodIsOpen = "IsOpen"
	methodIsFull = "IsFull"

	minSize = 1
)

// Rendering glyphs for String.
const (
	glyphBlocked = '#'
	glyphOpen    = 'o'
	glyphFull    = '*'
)

// neighborOffsets lists the edge-adjacent (row, col) deltas: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an n×n percolation system.
type Grid struct {
	n         int
	open      []bool // row-major, len n²
	openCount int

	full *unionfind.UnionFind // sites + virtualTop + virtualBottom
	top  *unionfind.UnionFind // sites + virtualTop

	virtualTop    int
	virtualBottom int
}

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < minSize {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodNew, n, minSize, ErrInvalidArgument)
	}
	sites := n * n

	full, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("%s: full-connectivity forest: %w", methodNew, err)
	}
	top, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, fmt.Errorf("%s: top-connectivity forest: %w", methodNew, err)
	}

	return &Grid{
		n:             n,
		open:          make([]bool, sites),
		full:          full,
		top:           top,
		virtualTop:    sites,
		virtualBottom: sites + 1,
	}, nil
}

// Size returns n.
func (g *Grid) Size() int {
	return g.n
}

// Open opens site (row, col) if it is not open already and connects it to
// its open neighbors and, on a boundary row, to the matching virtual node.
// Repeated calls are no-ops.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(methodOpen, row, col); err != nil {
		return err
	}
	idx := g.index(row, col)
	if g.open[idx] {
		return nil
	}
	g.open[idx] = true
	g.openCount++

	if row == 1 {
		if err := g.unionBoth(idx, g.virtualTop); err != nil {
			return fmt.Errorf("%s: (%d,%d) to top: %w", methodOpen, row, col, err)
		}
	}
	// The bottom node exists only in the full forest.
	if row == g.n {
		if err := g.full.Union(idx, g.virtualBottom); err != nil {
			return fmt.Errorf("%s: (%d,%d) to bottom: %w", methodOpen, row, col, err)
		}
	}
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		nb := g.index(r, c)
		if !g.open[nb] {
			continue
		}
		if err := g.unionBoth(idx, nb); err != nil {
			return fmt.Errorf("%s: (%d,%d) to (%d,%d): %w", methodOpen, row, col, r, c, err)
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(methodIsOpen, row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and joined to the top row
// by a chain of open, edge-adjacent sites.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(methodIsFull, row, col); err != nil {
		return false, err
	}
	idx := g.index(row, col)
	if !g.open[idx] {
		return false, nil
	}
	ok, err := g.top.Connected(idx, g.virtualTop)
	if err != nil {
		return false, fmt.Errorf("%s: (%d,%d): %w", methodIsFull, row, col, err)
	}

	return ok, nil
}

// NumberOfOpenSites returns how many sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Percolates reports whether an open path joins the top row to the bottom row.
func (g *Grid) Percolates() bool {
	// Both virtual indices are in range by construction.
	ok, _ := g.full.Connected(g.virtualTop, g.virtualBottom)
	return ok
}

// String renders the grid one row per line: '#' blocked, 'o' open, '*' full.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			idx := g.index(row, col)
			switch {
			case !g.open[idx]:
				sb.WriteByte(glyphBlocked)
			case g.fullAt(idx):
				sb.WriteByte(glyphFull)
			default:
				sb.WriteByte(glyphOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (g *Grid) fullAt(idx int) bool {
	ok, _ := g.top.Connected(idx, g.virtualTop)
	return ok
}

func (g *Grid) unionBoth(p, q int) error {
	if err := g.full.Union(p, q); err != nil {
		return err
	}

	return g.top.Union(p, q)
}

// index maps 1-indexed (row, col) to its row-major flat index.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

func (g *Grid) validate(method string, row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%s: row=%d, col=%d (each must be in 1..%d): %w",
			method, row, col, g.n, ErrInvalidArgument)
	}

	return nil
}
