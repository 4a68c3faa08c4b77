// SPDX-License-Identifier: MIT

package percolation

import "errors"

// ErrInvalidArgument indicates a non-positive grid size or a coordinate
// outside [1,n]. Returned errors wrap it with method context; match with
// errors.Is.
var ErrInvalidArgument = errors.New("percolation: invalid argument")
