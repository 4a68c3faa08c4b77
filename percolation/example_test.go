// SPDX-License-Identifier: MIT

package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// ExampleGrid opens a vertical chain in a 3×3 grid and watches it percolate.
func ExampleGrid() {
	g, _ := percolation.New(3)
	_ = g.Open(3, 1)
	_ = g.Open(1, 1)
	fmt.Println("percolates:", g.Percolates())

	_ = g.Open(2, 1)
	full, _ := g.IsFull(1, 1)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("full (1,1):", full)
	fmt.Println("open sites:", g.NumberOfOpenSites())
	fmt.Print(g)

	// Output:
	// percolates: false
	// percolates: true
	// full (1,1): true
	// open sites: 3
	// *##
	// *##
	// *##
}

// ExampleGrid_IsFull shows that a bottom-row site joined only through the
// bottom edge is not full, even after the grid percolates.
func ExampleGrid_IsFull() {
	g, _ := percolation.New(3)
	for _, s := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 3}} {
		_ = g.Open(s[0], s[1])
	}
	full, _ := g.IsFull(3, 3)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("full (3,3):", full)

	// Output:
	// percolates: true
	// full (3,3): false
}
