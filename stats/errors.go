// SPDX-License-Identifier: MIT

package stats

import "errors"

var (
	// ErrInvalidSize indicates a grid size n ≤ 0.
	ErrInvalidSize = errors.New("stats: grid size must be ≥ 1")

	// ErrInvalidTrials indicates a trial count ≤ 0.
	ErrInvalidTrials = errors.New("stats: trials must be ≥ 1")
)
