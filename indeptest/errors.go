package indeptest

import "errors"

// ErrCannotTest is returned when the test is undefined for the given
// inputs: either |S|+2 > n-1 (not enough degrees of freedom) or the {i,j}∪S
// submatrix is numerically singular even after the ridge-regularization
// retry (spec §4.2 edge cases). Per spec §7, this is treated as "do not
// delete" by the caller, never as a fatal error.
var ErrCannotTest = errors.New("indeptest: cannot test at this conditioning-set size")
