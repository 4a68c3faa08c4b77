// SPDX-License-Identifier: MIT

package stats

import "math/rand"

// trialSeed mixes the base seed with a trial index (SplitMix64 finalizer) so
// neighbouring trials get uncorrelated streams.
func trialSeed(base int64, trial uint64) int64 {
	x := uint64(base) ^ (trial + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialRNG returns the deterministic stream for one trial. Not goroutine-safe;
// each trial owns its own.
func trialRNG(base int64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(trialSeed(base, uint64(trial))))
}
