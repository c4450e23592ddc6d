package checked

import (
	"fmt"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/internal/xmath"
	"golang.org/x/exp/constraints"
)

// TryResize returns the size by size rectangle centered as closely as
// possible on r. When the difference between the current and the new
// length of an axis is odd, Min moves one unit less than Max. An axis
// covering all of T is centered using its true length, one more than
// [geom.LenX] reports for it. It fails with [ErrDegenerate] if size is
// less than [geom.MinResize].
func TryResize[T constraints.Integer](r geom.Rect[T], size uint64) (geom.Rect[T], error) {
	if size < geom.MinResize {
		return geom.Rect[T]{}, fmt.Errorf("resize %v to %v: %w", r, size, ErrDegenerate)
	}

	minX, maxX, okx := xmath.CheckedResize(r.Min.X, r.Max.X, size)
	minY, maxY, oky := xmath.CheckedResize(r.Min.Y, r.Max.Y, size)
	if !okx || !oky {
		return geom.Rect[T]{}, fmt.Errorf("resize %v to %v: %w", r, size, ErrOutOfRange)
	}
	return geom.Rt(minX, minY, maxX, maxY), nil
}

func Resize[T constraints.Integer](r geom.Rect[T], size uint64) geom.Rect[T] {
	return must(TryResize(r, size))
}

func TryResizeAssign[T constraints.Integer](r *geom.Rect[T], size uint64) error {
	s, err := TryResize(*r, size)
	return assign(r, s, err)
}

func ResizeAssign[T constraints.Integer](r *geom.Rect[T], size uint64) {
	*r = Resize(*r, size)
}

// TryInflate grows r by one unit on every side.
func TryInflate[T constraints.Integer](r geom.Rect[T]) (geom.Rect[T], error) {
	minX, ok1 := xmath.CheckedAdd(r.Min.X, xmath.Neg(1))
	minY, ok2 := xmath.CheckedAdd(r.Min.Y, xmath.Neg(1))
	maxX, ok3 := xmath.CheckedAdd(r.Max.X, xmath.Pos(1))
	maxY, ok4 := xmath.CheckedAdd(r.Max.Y, xmath.Pos(1))
	if !(ok1 && ok2 && ok3 && ok4) {
		return geom.Rect[T]{}, fmt.Errorf("inflate %v: %w", r, ErrOutOfRange)
	}
	return geom.Rt(minX, minY, maxX, maxY), nil
}

func Inflate[T constraints.Integer](r geom.Rect[T]) geom.Rect[T] {
	return must(TryInflate(r))
}

func TryInflateAssign[T constraints.Integer](r *geom.Rect[T]) error {
	s, err := TryInflate(*r)
	return assign(r, s, err)
}

func InflateAssign[T constraints.Integer](r *geom.Rect[T]) {
	*r = Inflate(*r)
}

// TryDeflate shrinks r by one unit on every side. It fails with
// [ErrDegenerate] if the delta of either axis is less than
// [geom.MinDeflateDelta].
func TryDeflate[T constraints.Integer](r geom.Rect[T]) (geom.Rect[T], error) {
	if geom.DeltaX(r) < geom.MinDeflateDelta || geom.DeltaY(r) < geom.MinDeflateDelta {
		return geom.Rect[T]{}, fmt.Errorf("deflate %v: %w", r, ErrDegenerate)
	}

	minX, ok1 := xmath.CheckedAdd(r.Min.X, xmath.Pos(1))
	minY, ok2 := xmath.CheckedAdd(r.Min.Y, xmath.Pos(1))
	maxX, ok3 := xmath.CheckedAdd(r.Max.X, xmath.Neg(1))
	maxY, ok4 := xmath.CheckedAdd(r.Max.Y, xmath.Neg(1))
	if !(ok1 && ok2 && ok3 && ok4) {
		return geom.Rect[T]{}, fmt.Errorf("deflate %v: %w", r, ErrOutOfRange)
	}
	return geom.Rt(minX, minY, maxX, maxY), nil
}

func Deflate[T constraints.Integer](r geom.Rect[T]) geom.Rect[T] {
	return must(TryDeflate(r))
}

func TryDeflateAssign[T constraints.Integer](r *geom.Rect[T]) error {
	s, err := TryDeflate(*r)
	return assign(r, s, err)
}

func DeflateAssign[T constraints.Integer](r *geom.Rect[T]) {
	*r = Deflate(*r)
}
