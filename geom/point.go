package geom

import (
	"fmt"

	"deedles.dev/xgeom/internal/xmath"
)

// Point is an X, Y coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

// MinPt returns the point with both coordinates at the minimum value
// of T.
func MinPt[T Scalar]() Point[T] {
	return Pt(xmath.Min[T](), xmath.Min[T]())
}

// MaxPt returns the point with both coordinates at the maximum value
// of T.
func MaxPt[T Scalar]() Point[T] {
	return Pt(xmath.Max[T](), xmath.Max[T]())
}

// Add returns p+q without any overflow handling. See the policy
// packages for arithmetic that is safe at the edges of T.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// Neg returns -p. For unsigned T, and for the minimum of a signed T,
// this is the two's complement negation.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{-p.X, -p.Y}
}

// In reports whether p lies within r, including on its edges.
func (p Point[T]) In(r Rect[T]) bool {
	return r.Contains(p)
}

func (p Point[T]) IsZero() bool {
	return (p.X == 0) && (p.Y == 0)
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}
