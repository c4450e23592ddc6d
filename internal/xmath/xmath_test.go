package xmath_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/internal/xmath"
	"github.com/stretchr/testify/require"
)

func TestLimits(t *testing.T) {
	require.Equal(t, int8(math.MinInt8), xmath.Min[int8]())
	require.Equal(t, int8(math.MaxInt8), xmath.Max[int8]())
	require.Equal(t, int16(math.MinInt16), xmath.Min[int16]())
	require.Equal(t, int16(math.MaxInt16), xmath.Max[int16]())
	require.Equal(t, int32(math.MinInt32), xmath.Min[int32]())
	require.Equal(t, int32(math.MaxInt32), xmath.Max[int32]())
	require.Equal(t, int64(math.MinInt64), xmath.Min[int64]())
	require.Equal(t, int64(math.MaxInt64), xmath.Max[int64]())
	require.Equal(t, uint8(0), xmath.Min[uint8]())
	require.Equal(t, uint8(math.MaxUint8), xmath.Max[uint8]())
	require.Equal(t, uint16(math.MaxUint16), xmath.Max[uint16]())
	require.Equal(t, uint32(math.MaxUint32), xmath.Max[uint32]())
	require.Equal(t, uint64(math.MaxUint64), xmath.Max[uint64]())
	require.Equal(t, float32(math.MaxFloat32), xmath.Max[float32]())
	require.Equal(t, float32(-math.MaxFloat32), xmath.Min[float32]())
	require.Equal(t, math.MaxFloat64, xmath.Max[float64]())

	require.Equal(t, uint64(math.MaxUint8), xmath.Mask[int8]())
	require.Equal(t, uint64(math.MaxUint32), xmath.Mask[uint32]())
	require.Equal(t, uint64(math.MaxUint64), xmath.Mask[int64]())

	require.True(t, xmath.IsSigned[int16]())
	require.False(t, xmath.IsSigned[uint16]())
	require.True(t, xmath.IsFloat[float32]())
	require.False(t, xmath.IsFloat[int64]())
}

func TestOffsetOf(t *testing.T) {
	require.Equal(t, xmath.Pos(5), xmath.OffsetOf(int8(5)))
	require.Equal(t, xmath.Neg(128), xmath.OffsetOf(int8(math.MinInt8)))
	require.Equal(t, xmath.Neg(1<<63), xmath.OffsetOf(int64(math.MinInt64)))
	require.Equal(t, xmath.Pos(math.MaxUint64), xmath.OffsetOf(uint64(math.MaxUint64)))
	require.Equal(t, xmath.Pos(0), xmath.Neg(0))
}

func TestCheckedAdd(t *testing.T) {
	tests := []struct {
		name string
		v    int8
		o    xmath.Offset
		r    int8
		ok   bool
	}{
		{name: "Zero", v: 0, o: xmath.Pos(0), r: 0, ok: true},
		{name: "ToMax", v: 100, o: xmath.Pos(27), r: 127, ok: true},
		{name: "PastMax", v: 100, o: xmath.Pos(28), r: 100, ok: false},
		{name: "ToMin", v: -100, o: xmath.Neg(28), r: -128, ok: true},
		{name: "PastMin", v: -100, o: xmath.Neg(29), r: -100, ok: false},
		{name: "FullSpan", v: -128, o: xmath.Pos(255), r: 127, ok: true},
		{name: "HugeOffset", v: 0, o: xmath.Pos(math.MaxUint64), r: 0, ok: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, ok := xmath.CheckedAdd(test.v, test.o)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.r, r)
		})
	}
}

func TestCheckedAddUnsigned64(t *testing.T) {
	r, ok := xmath.CheckedAdd(uint64(1), xmath.Pos(math.MaxUint64-1))
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxUint64), r)

	_, ok = xmath.CheckedAdd(uint64(1), xmath.Pos(math.MaxUint64))
	require.False(t, ok)

	_, ok = xmath.CheckedAdd(uint64(1), xmath.Neg(2))
	require.False(t, ok)
}

func TestSaturatingAdd(t *testing.T) {
	require.Equal(t, int16(math.MaxInt16), xmath.SaturatingAdd(int16(30000), xmath.Pos(10000)))
	require.Equal(t, int16(math.MinInt16), xmath.SaturatingAdd(int16(-30000), xmath.Neg(10000)))
	require.Equal(t, uint16(0), xmath.SaturatingAdd(uint16(3), xmath.Neg(4)))
	require.Equal(t, uint16(7), xmath.SaturatingAdd(uint16(3), xmath.Pos(4)))
}

func TestWrappingAdd(t *testing.T) {
	require.Equal(t, int8(math.MinInt8), xmath.WrappingAdd(int8(127), xmath.Pos(1)))
	require.Equal(t, int8(127), xmath.WrappingAdd(int8(-128), xmath.Neg(1)))
	require.Equal(t, uint8(4), xmath.WrappingAdd(uint8(250), xmath.Pos(10)))
	require.Equal(t, int32(5), xmath.WrappingAdd(int32(5), xmath.Pos(1<<32)))
}

func TestAddFloat(t *testing.T) {
	_, ok := xmath.CheckedAddFloat(float32(math.MaxFloat32), float32(math.MaxFloat32))
	require.False(t, ok)

	r, ok := xmath.CheckedAddFloat(1.5, 2.0)
	require.True(t, ok)
	require.Equal(t, 3.5, r)

	require.Equal(t, math.MaxFloat64, xmath.SaturatingAddFloat(math.MaxFloat64, math.MaxFloat64))
	require.Equal(t, -math.MaxFloat64, xmath.SaturatingAddFloat(-math.MaxFloat64, -math.MaxFloat64))
}
