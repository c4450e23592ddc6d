// Package wrapping implements rectangle arithmetic modulo the width of
// the rectangle's scalar type: a coordinate pushed past the maximum
// reappears at the minimum and vice versa.
//
// Only integer rectangles are supported. Moving a rectangle derives
// Max from the wrapped Min, so the delta of each axis is preserved
// exactly, even when the rectangle ends up straddling the boundary of
// its type. Requests for degenerate rectangles leave the rectangle
// unchanged.
package wrapping

import (
	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/internal/xmath"
	"golang.org/x/exp/constraints"
)

// Add adds each coordinate of d to the corresponding coordinate of r.
func Add[T, D constraints.Integer](r geom.Rect[T], d geom.Rect[D]) geom.Rect[T] {
	return geom.Rt(
		xmath.WrappingAdd(r.Min.X, xmath.OffsetOf(d.Min.X)),
		xmath.WrappingAdd(r.Min.Y, xmath.OffsetOf(d.Min.Y)),
		xmath.WrappingAdd(r.Max.X, xmath.OffsetOf(d.Max.X)),
		xmath.WrappingAdd(r.Max.Y, xmath.OffsetOf(d.Max.Y)),
	)
}

func AddAssign[T, D constraints.Integer](r *geom.Rect[T], d geom.Rect[D]) {
	*r = Add(*r, d)
}

// Translate moves r by d. Translating by d and then by d.Neg() returns
// the original rectangle whenever D is at least as wide as T.
func Translate[T, D constraints.Integer](r geom.Rect[T], d geom.Point[D]) geom.Rect[T] {
	r.Min.X, r.Max.X = xmath.WrappingShift(r.Min.X, r.Max.X, xmath.OffsetOf(d.X))
	r.Min.Y, r.Max.Y = xmath.WrappingShift(r.Min.Y, r.Max.Y, xmath.OffsetOf(d.Y))
	return r
}

func TranslateAssign[T, D constraints.Integer](r *geom.Rect[T], d geom.Point[D]) {
	*r = Translate(*r, d)
}

func Translate4[T, D constraints.Integer](r geom.Rect4[T], d geom.Point4[D]) geom.Rect4[T] {
	r.Min.X, r.Max.X = xmath.WrappingShift(r.Min.X, r.Max.X, xmath.OffsetOf(d.X))
	r.Min.Y, r.Max.Y = xmath.WrappingShift(r.Min.Y, r.Max.Y, xmath.OffsetOf(d.Y))
	r.Min.Z, r.Max.Z = xmath.WrappingShift(r.Min.Z, r.Max.Z, xmath.OffsetOf(d.Z))
	r.Min.W, r.Max.W = xmath.WrappingShift(r.Min.W, r.Max.W, xmath.OffsetOf(d.W))
	return r
}

func Translate4Assign[T, D constraints.Integer](r *geom.Rect4[T], d geom.Point4[D]) {
	*r = Translate4(*r, d)
}

// Resize returns the size by size rectangle centered on r, wrapping
// any coordinate that leaves the range of T. A size less than
// [geom.MinResize] returns r unchanged.
func Resize[T constraints.Integer](r geom.Rect[T], size uint64) geom.Rect[T] {
	if size < geom.MinResize {
		return r
	}
	r.Min.X, r.Max.X = xmath.WrappingResize(r.Min.X, r.Max.X, size)
	r.Min.Y, r.Max.Y = xmath.WrappingResize(r.Min.Y, r.Max.Y, size)
	return r
}

func ResizeAssign[T constraints.Integer](r *geom.Rect[T], size uint64) {
	*r = Resize(*r, size)
}

// Inflate grows r by one unit on every side.
func Inflate[T constraints.Integer](r geom.Rect[T]) geom.Rect[T] {
	return geom.Rt(
		xmath.WrappingAdd(r.Min.X, xmath.Neg(1)),
		xmath.WrappingAdd(r.Min.Y, xmath.Neg(1)),
		xmath.WrappingAdd(r.Max.X, xmath.Pos(1)),
		xmath.WrappingAdd(r.Max.Y, xmath.Pos(1)),
	)
}

func InflateAssign[T constraints.Integer](r *geom.Rect[T]) {
	*r = Inflate(*r)
}

// Deflate shrinks r by one unit on every side. If the delta of either
// axis is less than [geom.MinDeflateDelta], r is returned unchanged.
func Deflate[T constraints.Integer](r geom.Rect[T]) geom.Rect[T] {
	if geom.DeltaX(r) < geom.MinDeflateDelta || geom.DeltaY(r) < geom.MinDeflateDelta {
		return r
	}
	return geom.Rt(
		xmath.WrappingAdd(r.Min.X, xmath.Pos(1)),
		xmath.WrappingAdd(r.Min.Y, xmath.Pos(1)),
		xmath.WrappingAdd(r.Max.X, xmath.Neg(1)),
		xmath.WrappingAdd(r.Max.Y, xmath.Neg(1)),
	)
}

func DeflateAssign[T constraints.Integer](r *geom.Rect[T]) {
	*r = Deflate(*r)
}
