package vec

import "errors"

// ErrCapacityOverflow is returned when a requested capacity cannot be
// represented as a byte count for the element type. An allocation that
// fails this way leaves the vector untouched.
var ErrCapacityOverflow = errors.New("vec: capacity overflows address space")
