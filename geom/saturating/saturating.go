// Package saturating implements rectangle arithmetic that clamps
// coordinates to the range of the rectangle's scalar type instead of
// overflowing.
//
// Operations that move a whole rectangle, such as [Translate] and
// [Resize], clamp the movement rather than the individual corners, so
// the rectangle keeps its size whenever that size fits in the scalar
// type at all. Requests for degenerate rectangles leave the rectangle
// unchanged.
package saturating

import (
	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/internal/xmath"
	"golang.org/x/exp/constraints"
)

// Add adds each coordinate of d to the corresponding coordinate of r,
// clamping each result independently.
func Add[T, D constraints.Integer](r geom.Rect[T], d geom.Rect[D]) geom.Rect[T] {
	return geom.Rt(
		xmath.SaturatingAdd(r.Min.X, xmath.OffsetOf(d.Min.X)),
		xmath.SaturatingAdd(r.Min.Y, xmath.OffsetOf(d.Min.Y)),
		xmath.SaturatingAdd(r.Max.X, xmath.OffsetOf(d.Max.X)),
		xmath.SaturatingAdd(r.Max.Y, xmath.OffsetOf(d.Max.Y)),
	)
}

func AddAssign[T, D constraints.Integer](r *geom.Rect[T], d geom.Rect[D]) {
	*r = Add(*r, d)
}

// Translate moves r by d, stopping at the edges of T. The size of r
// never changes.
func Translate[T, D constraints.Integer](r geom.Rect[T], d geom.Point[D]) geom.Rect[T] {
	r.Min.X, r.Max.X = xmath.SaturatingShift(r.Min.X, r.Max.X, xmath.OffsetOf(d.X))
	r.Min.Y, r.Max.Y = xmath.SaturatingShift(r.Min.Y, r.Max.Y, xmath.OffsetOf(d.Y))
	return r
}

func TranslateAssign[T, D constraints.Integer](r *geom.Rect[T], d geom.Point[D]) {
	*r = Translate(*r, d)
}

// Translate4 is the four-dimensional equivalent of [Translate].
func Translate4[T, D constraints.Integer](r geom.Rect4[T], d geom.Point4[D]) geom.Rect4[T] {
	r.Min.X, r.Max.X = xmath.SaturatingShift(r.Min.X, r.Max.X, xmath.OffsetOf(d.X))
	r.Min.Y, r.Max.Y = xmath.SaturatingShift(r.Min.Y, r.Max.Y, xmath.OffsetOf(d.Y))
	r.Min.Z, r.Max.Z = xmath.SaturatingShift(r.Min.Z, r.Max.Z, xmath.OffsetOf(d.Z))
	r.Min.W, r.Max.W = xmath.SaturatingShift(r.Min.W, r.Max.W, xmath.OffsetOf(d.W))
	return r
}

func Translate4Assign[T, D constraints.Integer](r *geom.Rect4[T], d geom.Point4[D]) {
	*r = Translate4(*r, d)
}

// Resize returns the size by size rectangle centered as closely as
// possible on r, pushed back inside the range of T where necessary. A
// size larger than the range of T produces [geom.Largest]. A size
// less than [geom.MinResize] returns r unchanged.
func Resize[T constraints.Integer](r geom.Rect[T], size uint64) geom.Rect[T] {
	if size < geom.MinResize {
		return r
	}
	r.Min.X, r.Max.X = xmath.SaturatingResize(r.Min.X, r.Max.X, size)
	r.Min.Y, r.Max.Y = xmath.SaturatingResize(r.Min.Y, r.Max.Y, size)
	return r
}

func ResizeAssign[T constraints.Integer](r *geom.Rect[T], size uint64) {
	*r = Resize(*r, size)
}

// Inflate grows r by one unit on every side that is not already at
// the edge of T.
func Inflate[T constraints.Integer](r geom.Rect[T]) geom.Rect[T] {
	return geom.Rt(
		xmath.SaturatingAdd(r.Min.X, xmath.Neg(1)),
		xmath.SaturatingAdd(r.Min.Y, xmath.Neg(1)),
		xmath.SaturatingAdd(r.Max.X, xmath.Pos(1)),
		xmath.SaturatingAdd(r.Max.Y, xmath.Pos(1)),
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
		xmath.SaturatingAdd(r.Min.X, xmath.Pos(1)),
		xmath.SaturatingAdd(r.Min.Y, xmath.Pos(1)),
		xmath.SaturatingAdd(r.Max.X, xmath.Neg(1)),
		xmath.SaturatingAdd(r.Max.Y, xmath.Neg(1)),
	)
}

func DeflateAssign[T constraints.Integer](r *geom.Rect[T]) {
	*r = Deflate(*r)
}
