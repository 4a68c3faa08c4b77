// SPDX-License-Identifier: MIT

package unionfind

import "errors"

var (
	// ErrInvalidSize indicates a requested universe size below minSize.
	ErrInvalidSize = errors.New("unionfind: size must be ≥ 1")

	// ErrOutOfRange indicates an element identifier outside [0, n).
	ErrOutOfRange = errors.New("unionfind: element out of range")
)
