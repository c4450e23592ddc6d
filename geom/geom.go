// Package geom provides axis-aligned points and rectangles over any
// integer or floating-point scalar type.
//
// Unlike image.Rectangle, a Rect includes both of its corners: the
// rectangle Rt(0, 0, 9, 9) covers ten columns and ten rows. This lets
// a rectangle reach the very last representable value of its scalar
// type, and the arithmetic in this package and its subpackages is
// written to behave correctly there. A Rect with Min greater than Max
// on some axis is empty; nothing prevents constructing one, but the
// size-dependent operations assume that both axes are well-formed.
//
// Arithmetic that can leave the range of the scalar type lives in
// three subpackages, one per overflow policy: [deedles.dev/xgeom/geom/checked]
// fails, [deedles.dev/xgeom/geom/saturating] clamps and
// [deedles.dev/xgeom/geom/wrapping] wraps around.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer type. Functions that depend
// on the exact range of a type, such as [DeltaX], require it.
type Integer interface {
	constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

const (
	// MinResize is the smallest side length that a rectangle can be
	// resized to.
	MinResize = 3

	// MinDeflateDelta is the smallest delta that an axis must have
	// for a rectangle to be deflated.
	MinDeflateDelta = 3
)
