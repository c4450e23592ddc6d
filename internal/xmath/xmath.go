// Package xmath provides scalar limits and the per-axis arithmetic
// shared by geom and its overflow policy packages.
//
// All integer arithmetic here is carried out in uint64. Every
// supported integer type converts into uint64 with sign extension and
// converts back by truncation, so a sum computed there and narrowed
// back to T is the modular sum in T. The checked and saturating
// variants decide whether that modular sum is the true sum by
// comparing against the distance to the bounds of T, which always fits
// in a uint64.
package xmath

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of types that xmath can describe the limits of.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Bits returns the width of T in bits.
func Bits[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Scalar]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Scalar]() bool {
	var v T
	v--
	return v < 0
}

// Max returns the largest finite value of T.
func Max[T Scalar]() T {
	bits := Bits[T]()
	switch {
	case IsFloat[T]():
		if bits == 32 {
			f := float64(math.MaxFloat32)
			return T(f)
		}
		f := math.MaxFloat64
		return T(f)
	case IsSigned[T]():
		return T(^uint64(0) >> (65 - bits))
	default:
		return T(^uint64(0) >> (64 - bits))
	}
}

// Min returns the smallest finite value of T.
func Min[T Scalar]() T {
	switch {
	case IsFloat[T]():
		return -Max[T]()
	case IsSigned[T]():
		return -Max[T]() - 1
	default:
		return 0
	}
}

// Mask returns the largest value of the unsigned type with the same
// width as T. Distances between two values of T never exceed it.
func Mask[T constraints.Integer]() uint64 {
	return ^uint64(0) >> (64 - Bits[T]())
}

// Offset is a signed distance whose magnitude may use all 64 bits, so
// it can describe any difference between two integers of up to 64
// bits, signed or not.
type Offset struct {
	Neg bool
	Mag uint64
}

// Pos returns the offset +m.
func Pos(m uint64) Offset { return Offset{Mag: m} }

// Neg returns the offset -m.
func Neg(m uint64) Offset { return Offset{Neg: m != 0, Mag: m} }

// OffsetOf converts an integer of any width into an Offset.
func OffsetOf[D constraints.Integer](d D) Offset {
	if d < 0 {
		return Offset{Neg: true, Mag: -uint64(d)}
	}
	return Offset{Mag: uint64(d)}
}

// Headroom returns how far v can be increased before it exceeds the
// maximum of T.
func Headroom[T constraints.Integer](v T) uint64 {
	return uint64(Max[T]()) - uint64(v)
}

// Footroom returns how far v can be decreased before it falls below
// the minimum of T.
func Footroom[T constraints.Integer](v T) uint64 {
	return uint64(v) - uint64(Min[T]())
}

// CheckedAdd returns v+o and whether the sum is representable in T.
// When it is not, v is returned unchanged.
func CheckedAdd[T constraints.Integer](v T, o Offset) (T, bool) {
	if o.Neg {
		if o.Mag > Footroom(v) {
			return v, false
		}
		return T(uint64(v) - o.Mag), true
	}
	if o.Mag > Headroom(v) {
		return v, false
	}
	return T(uint64(v) + o.Mag), true
}

// SaturatingAdd returns v+o clamped to the range of T.
func SaturatingAdd[T constraints.Integer](v T, o Offset) T {
	r, ok := CheckedAdd(v, o)
	switch {
	case ok:
		return r
	case o.Neg:
		return Min[T]()
	default:
		return Max[T]()
	}
}

// WrappingAdd returns v+o modulo 2^Bits[T].
func WrappingAdd[T constraints.Integer](v T, o Offset) T {
	if o.Neg {
		return T(uint64(v) - o.Mag)
	}
	return T(uint64(v) + o.Mag)
}

// CheckedAddFloat returns v+d and whether the sum is finite.
func CheckedAddFloat[T constraints.Float](v, d T) (T, bool) {
	r := v + d
	f := float64(r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return v, false
	}
	return r, true
}

// SaturatingAddFloat returns v+d clamped to the finite range of T.
func SaturatingAddFloat[T constraints.Float](v, d T) T {
	r := v + d
	switch f := float64(r); {
	case math.IsInf(f, 1):
		return Max[T]()
	case math.IsInf(f, -1):
		return Min[T]()
	}
	return r
}
