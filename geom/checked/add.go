package checked

import (
	"fmt"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/internal/xmath"
	"golang.org/x/exp/constraints"
)

// TryAdd adds each coordinate of d to the corresponding coordinate of
// r. Unlike [TryTranslate], the corners move independently.
func TryAdd[T, D constraints.Integer](r geom.Rect[T], d geom.Rect[D]) (geom.Rect[T], error) {
	minX, ok1 := xmath.CheckedAdd(r.Min.X, xmath.OffsetOf(d.Min.X))
	minY, ok2 := xmath.CheckedAdd(r.Min.Y, xmath.OffsetOf(d.Min.Y))
	maxX, ok3 := xmath.CheckedAdd(r.Max.X, xmath.OffsetOf(d.Max.X))
	maxY, ok4 := xmath.CheckedAdd(r.Max.Y, xmath.OffsetOf(d.Max.Y))
	if !(ok1 && ok2 && ok3 && ok4) {
		return geom.Rect[T]{}, fmt.Errorf("add %v to %v: %w", d, r, ErrOutOfRange)
	}
	return geom.Rt(minX, minY, maxX, maxY), nil
}

// Add is like [TryAdd] but panics on failure.
func Add[T, D constraints.Integer](r geom.Rect[T], d geom.Rect[D]) geom.Rect[T] {
	return must(TryAdd(r, d))
}

// TryAddAssign sets *r to the result of [TryAdd]. On failure, *r is
// left unchanged.
func TryAddAssign[T, D constraints.Integer](r *geom.Rect[T], d geom.Rect[D]) error {
	s, err := TryAdd(*r, d)
	return assign(r, s, err)
}

// AddAssign is like [TryAddAssign] but panics on failure.
func AddAssign[T, D constraints.Integer](r *geom.Rect[T], d geom.Rect[D]) {
	*r = Add(*r, d)
}

// TryTranslate moves r by d without changing its size.
func TryTranslate[T, D constraints.Integer](r geom.Rect[T], d geom.Point[D]) (geom.Rect[T], error) {
	minX, maxX, okx := xmath.CheckedShift(r.Min.X, r.Max.X, xmath.OffsetOf(d.X))
	minY, maxY, oky := xmath.CheckedShift(r.Min.Y, r.Max.Y, xmath.OffsetOf(d.Y))
	if !okx || !oky {
		return geom.Rect[T]{}, fmt.Errorf("translate %v by %v: %w", r, d, ErrOutOfRange)
	}
	return geom.Rt(minX, minY, maxX, maxY), nil
}

// Translate is like [TryTranslate] but panics on failure.
func Translate[T, D constraints.Integer](r geom.Rect[T], d geom.Point[D]) geom.Rect[T] {
	return must(TryTranslate(r, d))
}

func TryTranslateAssign[T, D constraints.Integer](r *geom.Rect[T], d geom.Point[D]) error {
	s, err := TryTranslate(*r, d)
	return assign(r, s, err)
}

func TranslateAssign[T, D constraints.Integer](r *geom.Rect[T], d geom.Point[D]) {
	*r = Translate(*r, d)
}

// TryTranslate4 is the four-dimensional equivalent of [TryTranslate].
func TryTranslate4[T, D constraints.Integer](r geom.Rect4[T], d geom.Point4[D]) (geom.Rect4[T], error) {
	var ok [4]bool
	var s geom.Rect4[T]
	s.Min.X, s.Max.X, ok[0] = xmath.CheckedShift(r.Min.X, r.Max.X, xmath.OffsetOf(d.X))
	s.Min.Y, s.Max.Y, ok[1] = xmath.CheckedShift(r.Min.Y, r.Max.Y, xmath.OffsetOf(d.Y))
	s.Min.Z, s.Max.Z, ok[2] = xmath.CheckedShift(r.Min.Z, r.Max.Z, xmath.OffsetOf(d.Z))
	s.Min.W, s.Max.W, ok[3] = xmath.CheckedShift(r.Min.W, r.Max.W, xmath.OffsetOf(d.W))
	if ok != [4]bool{true, true, true, true} {
		return geom.Rect4[T]{}, fmt.Errorf("translate %v by %v: %w", r, d, ErrOutOfRange)
	}
	return s, nil
}

func Translate4[T, D constraints.Integer](r geom.Rect4[T], d geom.Point4[D]) geom.Rect4[T] {
	return must(TryTranslate4(r, d))
}

func TryTranslate4Assign[T, D constraints.Integer](r *geom.Rect4[T], d geom.Point4[D]) error {
	s, err := TryTranslate4(*r, d)
	return assign(r, s, err)
}

func Translate4Assign[T, D constraints.Integer](r *geom.Rect4[T], d geom.Point4[D]) {
	*r = Translate4(*r, d)
}
