package saturating

import (
	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/internal/xmath"
	"golang.org/x/exp/constraints"
)

// TranslateFloat moves r by d, shortening the move so that neither
// corner passes the largest finite value of T.
func TranslateFloat[T constraints.Float](r geom.Rect[T], d geom.Point[T]) geom.Rect[T] {
	r.Min.X, r.Max.X = shiftFloat(r.Min.X, r.Max.X, d.X)
	r.Min.Y, r.Max.Y = shiftFloat(r.Min.Y, r.Max.Y, d.Y)
	return r
}

// AddFloat adds each coordinate of d to the corresponding coordinate
// of r, clamping each result to the finite range of T.
func AddFloat[T constraints.Float](r, d geom.Rect[T]) geom.Rect[T] {
	return geom.Rt(
		xmath.SaturatingAddFloat(r.Min.X, d.Min.X),
		xmath.SaturatingAddFloat(r.Min.Y, d.Min.Y),
		xmath.SaturatingAddFloat(r.Max.X, d.Max.X),
		xmath.SaturatingAddFloat(r.Max.Y, d.Max.Y),
	)
}

func shiftFloat[T constraints.Float](lo, hi, d T) (T, T) {
	top, bottom := xmath.Max[T](), xmath.Min[T]()
	switch {
	case d > 0:
		d = min(d, top-lo, top-hi)
	case d < 0:
		d = max(d, bottom-lo, bottom-hi)
	}
	return xmath.SaturatingAddFloat(lo, d), xmath.SaturatingAddFloat(hi, d)
}
