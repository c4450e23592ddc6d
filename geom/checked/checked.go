// Package checked implements rectangle arithmetic that fails rather
// than produce a coordinate outside of the range of the rectangle's
// scalar type.
//
// Every operation comes in four forms. TryOp returns the result or an
// error, Op panics instead of returning an error and is intended for
// callers that have already established that the operation is in
// range, and TryOpAssign and OpAssign do the same but update a Rect in
// place. The assigning forms either update every coordinate or none of
// them.
package checked

import "errors"

var (
	// ErrOutOfRange is returned when a resulting coordinate can not be
	// represented by the rectangle's scalar type.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrDegenerate is returned when a rectangle would be resized or
	// deflated below the minimum size. See [geom.MinResize] and
	// [geom.MinDeflateDelta].
	ErrDegenerate = errors.New("degenerate rectangle")
)

func must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}

func assign[R any](dst *R, r R, err error) error {
	if err != nil {
		return err
	}
	*dst = r
	return nil
}
