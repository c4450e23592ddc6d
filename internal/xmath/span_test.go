package xmath_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/internal/xmath"
	"github.com/stretchr/testify/require"
)

func TestDeltaLen(t *testing.T) {
	require.Equal(t, uint64(255), xmath.Delta(int8(-128), int8(127)))
	require.Equal(t, uint64(255), xmath.Len(int8(-128), int8(127)))
	require.Equal(t, uint64(255), xmath.Len(int8(-128), int8(126)))
	require.Equal(t, uint64(1), xmath.Len(uint8(9), uint8(9)))
	require.Equal(t, uint64(254), xmath.Delta(uint8(5), uint8(3)))
	require.Equal(t, uint64(math.MaxUint64), xmath.Len(int64(math.MinInt64), int64(math.MaxInt64)))
}

func TestSaturatingShiftKeepsLength(t *testing.T) {
	for lo := math.MinInt8; lo <= math.MaxInt8; lo++ {
		for _, hi := range []int{lo, lo + 1, lo + 50, math.MaxInt8} {
			if hi > math.MaxInt8 {
				continue
			}
			for _, o := range []xmath.Offset{xmath.Pos(1), xmath.Neg(1), xmath.Pos(200), xmath.Neg(300), xmath.Pos(math.MaxUint64)} {
				nlo, nhi := xmath.SaturatingShift(int8(lo), int8(hi), o)
				require.Equal(t, xmath.Len(int8(lo), int8(hi)), xmath.Len(nlo, nhi), "[%v, %v] by %+v", lo, hi, o)
				require.LessOrEqual(t, nlo, nhi)
			}
		}
	}
}

func TestWrappingShift(t *testing.T) {
	lo, hi := xmath.WrappingShift(int8(-128), int8(127), xmath.Pos(1))
	require.Equal(t, int8(-127), lo)
	require.Equal(t, int8(-128), hi)
}

func TestCenterOffset(t *testing.T) {
	require.Equal(t, xmath.Pos(3), xmath.CenterOffset(int32(0), int32(9), 3))
	require.Equal(t, xmath.Neg(1), xmath.CenterOffset(int32(0), int32(3), 7))
	require.Equal(t, xmath.Pos(0), xmath.CenterOffset(int32(0), int32(3), 4))

	require.Equal(t, xmath.Pos(126), xmath.CenterOffset(uint8(0), uint8(255), 4))
	require.Equal(t, xmath.Pos(126), xmath.CenterOffset(int8(-128), int8(127), 3))
	require.Equal(t, xmath.Pos(126), xmath.CenterOffset(int8(-128), int8(127), 4))
	require.Equal(t, xmath.Pos(0), xmath.CenterOffset(uint8(0), uint8(255), 256))
	require.Equal(t, xmath.Pos(math.MaxUint64/2-1), xmath.CenterOffset(int64(math.MinInt64), int64(math.MaxInt64), 4))
}

func TestResize(t *testing.T) {
	lo, hi, ok := xmath.CheckedResize(int32(0), int32(9), 3)
	require.True(t, ok)
	require.Equal(t, int32(3), lo)
	require.Equal(t, int32(5), hi)

	_, _, ok = xmath.CheckedResize(uint8(0), uint8(3), 7)
	require.False(t, ok)

	lo8, hi8 := xmath.SaturatingResize(uint8(0), uint8(3), 7)
	require.Equal(t, uint8(0), lo8)
	require.Equal(t, uint8(6), hi8)

	lo8, hi8 = xmath.SaturatingResize(uint8(250), uint8(255), 10)
	require.Equal(t, uint8(246), lo8)
	require.Equal(t, uint8(255), hi8)

	lo8, hi8 = xmath.SaturatingResize(uint8(10), uint8(20), 1000)
	require.Equal(t, uint8(0), lo8)
	require.Equal(t, uint8(255), hi8)

	lo8, hi8 = xmath.WrappingResize(uint8(0), uint8(3), 7)
	require.Equal(t, uint8(255), lo8)
	require.Equal(t, uint8(5), hi8)
}

func TestPlace(t *testing.T) {
	lo, hi := xmath.SaturatingPlace(uint8(250), 10)
	require.Equal(t, uint8(246), lo)
	require.Equal(t, uint8(255), hi)

	lo, hi = xmath.SaturatingPlaceEnd(uint8(4), 10)
	require.Equal(t, uint8(0), lo)
	require.Equal(t, uint8(9), hi)

	lo, hi = xmath.SaturatingPlaceEnd(uint8(40), 10)
	require.Equal(t, uint8(31), lo)
	require.Equal(t, uint8(40), hi)
}
