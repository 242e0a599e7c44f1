package geom

import "errors"

// ErrEmptySequence is returned by CheckedIndex when the sequence length is
// zero, so no index can be in bounds.
var ErrEmptySequence = errors.New("cannot index an empty sequence")

// Index wraps idx into [0, len(seq)) using floored modulo, so negative
// indices count back from the end and indices past the end wrap around.
//
// seq must be non-empty. An empty slice triggers the runtime's integer
// divide-by-zero panic; use CheckedIndex when the length is not known to
// be positive.
func Index[E any](seq []E, idx int) int {
	return IndexLen(len(seq), idx)
}

// IndexLen is Index for sequences that are only known by their length,
// such as strings or externally sized buffers.
func IndexLen(length, idx int) int {
	// Go's % truncates toward zero; shift negative remainders up to get
	// the floored result.
	r := idx % length
	if r < 0 {
		r += length
	}
	return r
}

// CheckedIndex is IndexLen with the non-empty precondition checked.
func CheckedIndex(length, idx int) (int, error) {
	if length <= 0 {
		return 0, ErrEmptySequence
	}
	return IndexLen(length, idx), nil
}
