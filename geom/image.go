package geom

import (
	"image"

	"deedles.dev/xgeom/internal/xmath"
	"golang.org/x/image/math/fixed"
)

// FromImagePoint converts p to a Point[int].
func FromImagePoint(p image.Point) Point[int] {
	return Pt(p.X, p.Y)
}

// ImagePoint converts p to an image.Point.
func ImagePoint(p Point[int]) image.Point {
	return image.Pt(p.X, p.Y)
}

// FromImageRect converts the half-open r into the Rect covering the
// same pixels. An empty r produces an empty Rect. It returns false if
// the last pixel of r can not be represented, which only happens when
// r.Max is at the minimum int.
func FromImageRect(r image.Rectangle) (Rect[int], bool) {
	x, y, ok := lastOf(r.Max.X, r.Max.Y)
	return Rt(r.Min.X, r.Min.Y, x, y), ok
}

// ImageRect converts r into the half-open image.Rectangle covering the
// same pixels. It returns false if r reaches the maximum int, as the
// image.Rectangle would need to end past it.
func ImageRect(r Rect[int]) (image.Rectangle, bool) {
	x, y, ok := pastOf(r.Max.X, r.Max.Y)
	return image.Rectangle{Min: ImagePoint(r.Min), Max: image.Pt(x, y)}, ok
}

// FromFixedRect converts the half-open r into the Rect covering the
// same 26.6 fixed-point values.
func FromFixedRect(r fixed.Rectangle26_6) (Rect[fixed.Int26_6], bool) {
	x, y, ok := lastOf(r.Max.X, r.Max.Y)
	return Rt(r.Min.X, r.Min.Y, x, y), ok
}

// FixedRect converts r into a half-open fixed.Rectangle26_6.
func FixedRect(r Rect[fixed.Int26_6]) (fixed.Rectangle26_6, bool) {
	x, y, ok := pastOf(r.Max.X, r.Max.Y)
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: r.Min.X, Y: r.Min.Y},
		Max: fixed.Point26_6{X: x, Y: y},
	}, ok
}

func lastOf[T Integer](x, y T) (T, T, bool) {
	x, okx := xmath.CheckedAdd(x, xmath.Neg(1))
	y, oky := xmath.CheckedAdd(y, xmath.Neg(1))
	return x, y, okx && oky
}

func pastOf[T Integer](x, y T) (T, T, bool) {
	x, okx := xmath.CheckedAdd(x, xmath.Pos(1))
	y, oky := xmath.CheckedAdd(y, xmath.Pos(1))
	return x, y, okx && oky
}
