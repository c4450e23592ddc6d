package geom

import (
	"iter"

	"deedles.dev/xgeom/internal/xmath"
)

// A Rect contains the points with Min.X <= X <= Max.X and Min.Y <= Y
// <= Max.Y. It is well-formed if Min.X <= Max.X and likewise for Y. A
// Rect that is not well-formed is empty.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Pt(x0, y0), Pt(x1, y1)}. Unlike
// image.Rect, the coordinates are not swapped into canonical order.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// Rpt is shorthand for Rect[T]{p0, p1}.
func Rpt[T Scalar](p0, p1 Point[T]) Rect[T] {
	return Rect[T]{Min: p0, Max: p1}
}

// Largest returns the rectangle that covers every point representable
// in T.
func Largest[T Scalar]() Rect[T] {
	return Rect[T]{MinPt[T](), MaxPt[T]()}
}

// Dx returns Max.X - Min.X in T. For integer types prefer [DeltaX],
// which cannot overflow.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns Max.Y - Min.Y in T. For integer types prefer [DeltaY],
// which cannot overflow.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether either axis of r is inverted.
func (r Rect[T]) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Canon returns r with the coordinates of inverted axes swapped.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Contains reports whether p lies within r, including on its edges.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether both corners of s lie within r.
func (r Rect[T]) ContainsRect(s Rect[T]) bool {
	return r.Contains(s.Min) && r.Contains(s.Max)
}

func (r Rect[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

// Points returns an iterator over every point in r, row by row. It
// yields nothing if r is empty.
func Points[T Integer](r Rect[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if r.Empty() {
			return
		}

		for y := r.Min.Y; ; y++ {
			for x := r.Min.X; ; x++ {
				if !yield(Pt(x, y)) {
					return
				}
				if x == r.Max.X {
					break
				}
			}
			if y == r.Max.Y {
				return
			}
		}
	}
}

// DeltaX returns Max.X - Min.X as the unsigned counterpart of T would
// hold it. A rectangle spanning every value of a signed T therefore
// has a delta of the unsigned maximum rather than overflowing.
func DeltaX[T Integer](r Rect[T]) uint64 {
	return xmath.Delta(r.Min.X, r.Max.X)
}

// DeltaY is the vertical equivalent of [DeltaX].
func DeltaY[T Integer](r Rect[T]) uint64 {
	return xmath.Delta(r.Min.Y, r.Max.Y)
}

// Delta returns the deltas of both axes of r.
func Delta[T Integer](r Rect[T]) Point[uint64] {
	return Pt(DeltaX(r), DeltaY(r))
}

// MaxDelta returns the larger of the deltas of r.
func MaxDelta[T Integer](r Rect[T]) uint64 {
	return max(DeltaX(r), DeltaY(r))
}

// LenX returns the number of columns in r. That is one more than
// [DeltaX], except when r spans the whole of T horizontally, in which
// case the count does not fit and the unsigned maximum is returned.
func LenX[T Integer](r Rect[T]) uint64 {
	return xmath.Len(r.Min.X, r.Max.X)
}

// LenY is the vertical equivalent of [LenX].
func LenY[T Integer](r Rect[T]) uint64 {
	return xmath.Len(r.Min.Y, r.Max.Y)
}

// Len returns the lengths of both axes of r.
func Len[T Integer](r Rect[T]) Point[uint64] {
	return Pt(LenX(r), LenY(r))
}

// MaxLen returns the larger of the lengths of r.
func MaxLen[T Integer](r Rect[T]) uint64 {
	return max(LenX(r), LenY(r))
}
