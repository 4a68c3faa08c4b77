// SPDX-License-Identifier: MIT

package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidSize verifies that universes below one element are rejected.
func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		uf, err := unionfind.New(n)
		assert.ErrorIs(t, err, unionfind.ErrInvalidSize, "n=%d", n)
		assert.Nil(t, uf, "n=%d", n)
	}
}

// TestNew_Singletons checks the initial forest: every element is its own root.
func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Count())

	for i := 0; i < 5; i++ {
		r, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r, "singleton %d must be its own root", i)

		sz, err := uf.SetSize(i)
		require.NoError(t, err)
		assert.Equal(t, 1, sz)
	}
}

// TestConnected_Table replays the classic ten-element union sequence
// and checks reachability pairs.
func TestConnected_Table(t *testing.T) {
	uf, err := unionfind.New(10)
	require.NoError(t, err)

	for _, pair := range [][2]int{{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1}} {
		require.NoError(t, uf.Union(pair[0], pair[1]))
	}

	cases := []struct {
		p, q int
		want bool
	}{
		{0, 0, true},
		{4, 3, true},
		{3, 4, true},
		{8, 9, true},
		{6, 5, true},
		{0, 7, false},
		{3, 1, false},
		{5, 9, false},
	}
	for _, tc := range cases {
		got, err := uf.Connected(tc.p, tc.q)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Connected(%d, %d)", tc.p, tc.q)
	}
	assert.Equal(t, 5, uf.Count(), "10 singletons minus 5 merging unions")

	sz, err := uf.SetSize(9)
	require.NoError(t, err)
	assert.Equal(t, 4, sz, "{3,4,8,9}")
}

// TestUnion_Redundant ensures repeated unions are no-ops on the set count.
func TestUnion_Redundant(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(1, 0))
	require.NoError(t, uf.Union(0, 0))
	assert.Equal(t, 2, uf.Count())
}

// TestOutOfRange checks every accessor rejects identifiers outside [0, n)
// and that a rejected Union leaves the forest untouched.
func TestOutOfRange(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	for _, p := range []int{-1, 4, 100} {
		_, err := uf.Find(p)
		assert.ErrorIs(t, err, unionfind.ErrOutOfRange, "Find(%d)", p)

		_, err = uf.SetSize(p)
		assert.ErrorIs(t, err, unionfind.ErrOutOfRange, "SetSize(%d)", p)

		_, err = uf.Connected(0, p)
		assert.ErrorIs(t, err, unionfind.ErrOutOfRange, "Connected(0, %d)", p)

		assert.ErrorIs(t, uf.Union(p, 0), unionfind.ErrOutOfRange, "Union(%d, 0)", p)
		assert.ErrorIs(t, uf.Union(0, p), unionfind.ErrOutOfRange, "Union(0, %d)", p)
	}
	assert.Equal(t, 4, uf.Count(), "failed unions must not merge anything")
}

// TestFind_Stable verifies Find returns the same root until a union touches the set.
func TestFind_Stable(t *testing.T) {
	uf, err := unionfind.New(6)
	require.NoError(t, err)
	require.NoError(t, uf.Union(0, 1))
	require.NoError(t, uf.Union(1, 2))

	r1, _ := uf.Find(2)
	r2, _ := uf.Find(0)
	assert.Equal(t, r1, r2)

	// A union elsewhere must not move this set's root.
	require.NoError(t, uf.Union(4, 5))
	r3, _ := uf.Find(1)
	assert.Equal(t, r1, r3)
}

// TestUnion_MatchesNaiveLabels cross-checks random unions against a
// quick-find relabeling model.
func TestUnion_MatchesNaiveLabels(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(42))

	uf, err := unionfind.New(n)
	require.NoError(t, err)

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	sets := n

	for step := 0; step < 300; step++ {
		p, q := r.Intn(n), r.Intn(n)
		require.NoError(t, uf.Union(p, q))

		if lp, lq := label[p], label[q]; lp != lq {
			for i := range label {
				if label[i] == lq {
					label[i] = lp
				}
			}
			sets--
		}
	}

	assert.Equal(t, sets, uf.Count())
	for k := 0; k < 500; k++ {
		p, q := r.Intn(n), r.Intn(n)
		got, err := uf.Connected(p, q)
		require.NoError(t, err)
		assert.Equal(t, label[p] == label[q], got, "Connected(%d, %d)", p, q)
	}
}
