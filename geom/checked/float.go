package checked

import (
	"fmt"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/internal/xmath"
	"golang.org/x/exp/constraints"
)

// TryTranslateFloat moves r by d, failing if any coordinate of the
// result is not finite.
func TryTranslateFloat[T constraints.Float](r geom.Rect[T], d geom.Point[T]) (geom.Rect[T], error) {
	return TryAddFloat(r, geom.Rpt(d, d))
}

func TranslateFloat[T constraints.Float](r geom.Rect[T], d geom.Point[T]) geom.Rect[T] {
	return must(TryTranslateFloat(r, d))
}

// TryAddFloat adds each coordinate of d to the corresponding
// coordinate of r, failing if any coordinate of the result is not
// finite.
func TryAddFloat[T constraints.Float](r, d geom.Rect[T]) (geom.Rect[T], error) {
	minX, ok1 := xmath.CheckedAddFloat(r.Min.X, d.Min.X)
	minY, ok2 := xmath.CheckedAddFloat(r.Min.Y, d.Min.Y)
	maxX, ok3 := xmath.CheckedAddFloat(r.Max.X, d.Max.X)
	maxY, ok4 := xmath.CheckedAddFloat(r.Max.Y, d.Max.Y)
	if !(ok1 && ok2 && ok3 && ok4) {
		return geom.Rect[T]{}, fmt.Errorf("add %v to %v: %w", d, r, ErrOutOfRange)
	}
	return geom.Rt(minX, minY, maxX, maxY), nil
}

func AddFloat[T constraints.Float](r, d geom.Rect[T]) geom.Rect[T] {
	return must(TryAddFloat(r, d))
}
