package xmath

import "golang.org/x/exp/constraints"

// Delta returns hi-lo as the unsigned counterpart of T would hold it.
// If lo > hi the result is the modular difference.
func Delta[T constraints.Integer](lo, hi T) uint64 {
	return (uint64(hi) - uint64(lo)) & Mask[T]()
}

// Len returns the number of values in [lo, hi]. A span covering all
// of T has one more value than the unsigned counterpart of T can
// count, in which case Len returns Mask[T]() instead.
func Len[T constraints.Integer](lo, hi T) uint64 {
	d := Delta(lo, hi)
	if d == Mask[T]() {
		return d
	}
	return d + 1
}

// CheckedShift moves both ends of [lo, hi] by o, reporting false if
// either end would leave the range of T.
func CheckedShift[T constraints.Integer](lo, hi T, o Offset) (T, T, bool) {
	nlo, ok1 := CheckedAdd(lo, o)
	nhi, ok2 := CheckedAdd(hi, o)
	if !ok1 || !ok2 {
		return lo, hi, false
	}
	return nlo, nhi, true
}

// SaturatingShift moves [lo, hi] by o, shortening the move so that
// neither end leaves the range of T. The length of the span is
// unchanged.
func SaturatingShift[T constraints.Integer](lo, hi T, o Offset) (T, T) {
	room := min(Headroom(lo), Headroom(hi))
	if o.Neg {
		room = min(Footroom(lo), Footroom(hi))
	}
	o.Mag = min(o.Mag, room)
	return WrappingAdd(lo, o), WrappingAdd(hi, o)
}

// WrappingShift moves lo by o modulo the width of T and places hi at
// the original distance from it.
func WrappingShift[T constraints.Integer](lo, hi T, o Offset) (T, T) {
	nlo := WrappingAdd(lo, o)
	return nlo, WrappingAdd(nlo, Pos(Delta(lo, hi)))
}

// CenterOffset returns how far the low end of [lo, hi] must move so
// that a span of size values starts there and is centered on the
// original. Odd differences are truncated towards zero, so the low
// end moves one unit less than the high end. Unlike [Len], a span
// covering all of T counts every one of its values. size must not be
// zero.
func CenterOffset[T constraints.Integer](lo, hi T, size uint64) Offset {
	// Comparing against size-1 keeps the true length, Delta+1, out of
	// uint64 for 64-bit types.
	d := Delta(lo, hi)
	if d >= size-1 {
		return Pos((d - (size - 1)) / 2)
	}
	return Neg((size - 1 - d) / 2)
}

// CheckedResize returns the span of size values centered on [lo, hi],
// reporting false if it does not fit in T. size must not be zero.
func CheckedResize[T constraints.Integer](lo, hi T, size uint64) (T, T, bool) {
	nlo, ok := CheckedAdd(lo, CenterOffset(lo, hi, size))
	if !ok {
		return lo, hi, false
	}
	nhi, ok := CheckedAdd(nlo, Pos(size-1))
	if !ok {
		return lo, hi, false
	}
	return nlo, nhi, true
}

// SaturatingResize returns the span of size values centered as close
// to [lo, hi] as the range of T allows. A size larger than the range
// of T yields the whole range. size must not be zero.
func SaturatingResize[T constraints.Integer](lo, hi T, size uint64) (T, T) {
	if size-1 > Mask[T]() {
		return Min[T](), Max[T]()
	}
	nlo := SaturatingAdd(lo, CenterOffset(lo, hi, size))
	if Headroom(nlo) < size-1 {
		nlo = T(uint64(Max[T]()) - (size - 1))
	}
	return nlo, WrappingAdd(nlo, Pos(size-1))
}

// WrappingResize returns the span of size values centered on [lo, hi]
// with both ends computed modulo the width of T. size must not be
// zero.
func WrappingResize[T constraints.Integer](lo, hi T, size uint64) (T, T) {
	nlo := WrappingAdd(lo, CenterOffset(lo, hi, size))
	return nlo, WrappingAdd(nlo, Pos(size-1))
}

// SaturatingPlace returns the span of size values starting at lo,
// pushed down if necessary so that it ends within T.
func SaturatingPlace[T constraints.Integer](lo T, size uint64) (T, T) {
	if size == 0 {
		return lo, WrappingAdd(lo, Neg(1))
	}
	if Headroom(lo) < size-1 {
		lo = SaturatingAdd(Max[T](), Neg(size-1))
	}
	return lo, SaturatingAdd(lo, Pos(size-1))
}

// SaturatingPlaceEnd returns the span of size values ending at hi,
// pushed up if necessary so that it starts within T.
func SaturatingPlaceEnd[T constraints.Integer](hi T, size uint64) (T, T) {
	if size == 0 {
		return WrappingAdd(hi, Pos(1)), hi
	}
	if Footroom(hi) < size-1 {
		hi = SaturatingAdd(Min[T](), Pos(size-1))
	}
	return SaturatingAdd(hi, Neg(size-1)), hi
}
