package geom

import (
	"fmt"

	"deedles.dev/xgeom/internal/xmath"
)

// Point4 is a point in four dimensions.
type Point4[T Scalar] struct {
	X, Y, Z, W T
}

// Pt4 is shorthand for Point4[T]{x, y, z, w}.
func Pt4[T Scalar](x, y, z, w T) Point4[T] {
	return Point4[T]{x, y, z, w}
}

func (p Point4[T]) Add(q Point4[T]) Point4[T] {
	return Point4[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z, p.W + q.W}
}

func (p Point4[T]) Sub(q Point4[T]) Point4[T] {
	return Point4[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z, p.W - q.W}
}

func (p Point4[T]) Neg() Point4[T] {
	return Point4[T]{-p.X, -p.Y, -p.Z, -p.W}
}

func (p Point4[T]) String() string {
	return fmt.Sprintf("(%v,%v,%v,%v)", p.X, p.Y, p.Z, p.W)
}

// Rect4 is the four-dimensional equivalent of [Rect]. It includes both
// of its corners.
type Rect4[T Scalar] struct {
	Min, Max Point4[T]
}

// Rt4 returns the Rect4 with corners p0 and p1.
func Rt4[T Scalar](p0, p1 Point4[T]) Rect4[T] {
	return Rect4[T]{Min: p0, Max: p1}
}

// Largest4 returns the Rect4 that covers every point representable in
// T.
func Largest4[T Scalar]() Rect4[T] {
	lo, hi := xmath.Min[T](), xmath.Max[T]()
	return Rect4[T]{Pt4(lo, lo, lo, lo), Pt4(hi, hi, hi, hi)}
}

func (r Rect4[T]) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y ||
		r.Min.Z > r.Max.Z || r.Min.W > r.Max.W
}

func (r Rect4[T]) Contains(p Point4[T]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y &&
		r.Min.Z <= p.Z && p.Z <= r.Max.Z &&
		r.Min.W <= p.W && p.W <= r.Max.W
}

func (r Rect4[T]) ContainsRect(s Rect4[T]) bool {
	return r.Contains(s.Min) && r.Contains(s.Max)
}

func (r Rect4[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

// Delta4 returns the delta of every axis of r. See [DeltaX].
func Delta4[T Integer](r Rect4[T]) Point4[uint64] {
	return Pt4(
		xmath.Delta(r.Min.X, r.Max.X),
		xmath.Delta(r.Min.Y, r.Max.Y),
		xmath.Delta(r.Min.Z, r.Max.Z),
		xmath.Delta(r.Min.W, r.Max.W),
	)
}

// Len4 returns the length of every axis of r. See [LenX].
func Len4[T Integer](r Rect4[T]) Point4[uint64] {
	return Pt4(
		xmath.Len(r.Min.X, r.Max.X),
		xmath.Len(r.Min.Y, r.Max.Y),
		xmath.Len(r.Min.Z, r.Max.Z),
		xmath.Len(r.Min.W, r.Max.W),
	)
}

// MaxLen4 returns the largest of the lengths of r.
func MaxLen4[T Integer](r Rect4[T]) uint64 {
	n := Len4(r)
	return max(n.X, n.Y, n.Z, n.W)
}
