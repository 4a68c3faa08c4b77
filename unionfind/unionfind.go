// SPDX-License-Identifier: MIT

package unionfind

import "fmt"

const (
	methodNew       = "New"
	methodFind      = "Find"
	methodUnion     = "Union"
	methodConnected = "Connected"
	methodSetSize   = "SetSize"

	minSize = 1
)

// UnionFind is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New returns a forest of n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < minSize {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrInvalidSize)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the size of the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the canonical representative of the set containing p.
// The representative is stable until a Union merges p's set with another.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(methodFind, p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Union merges the sets containing p and q. Both identifiers are validated
// before the forest is touched.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(p, q int) error {
	if err := uf.validate(methodUnion, p); err != nil {
		return err
	}
	if err := uf.validate(methodUnion, q); err != nil {
		return err
	}

	rp, rq := uf.root(p), uf.root(q)
	if rp == rq {
		return nil
	}
	// Smaller tree goes under the larger root; ties keep p's root.
	if uf.size[rp] < uf.size[rq] {
		rp, rq = rq, rp
	}
	uf.parent[rq] = rp
	uf.size[rp] += uf.size[rq]
	uf.count--

	return nil
}

// Connected reports whether p and q belong to the same set.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(methodConnected, p); err != nil {
		return false, err
	}
	if err := uf.validate(methodConnected, q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// SetSize returns the number of elements in the set containing p.
func (uf *UnionFind) SetSize(p int) (int, error) {
	if err := uf.validate(methodSetSize, p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}

// root walks to the representative of p, pointing every visited node at its
// grandparent on the way (path halving). p must be valid.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

func (uf *UnionFind) validate(method string, p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%s: p=%d (want 0..%d): %w", method, p, len(uf.parent)-1, ErrOutOfRange)
	}

	return nil
}
