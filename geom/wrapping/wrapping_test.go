package wrapping_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xgeom/geom/wrapping"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		r    geom.Rect[int8]
		d    geom.Point[int8]
		out  geom.Rect[int8]
	}{
		{name: "Largest", r: geom.Largest[int8](), d: geom.Pt[int8](1, 0), out: geom.Rt[int8](-127, -128, -128, 127)},
		{name: "Interior", r: geom.Rt[int8](0, 0, 9, 9), d: geom.Pt[int8](5, -5), out: geom.Rt[int8](5, -5, 14, 4)},
		{name: "PastMax", r: geom.Rt[int8](120, 0, 125, 5), d: geom.Pt[int8](5, 0), out: geom.Rt[int8](125, 0, -126, 5)},
		{name: "PastMin", r: geom.Rt[int8](-128, 0, -120, 5), d: geom.Pt[int8](-1, 0), out: geom.Rt[int8](127, 0, -121, 5)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := wrapping.Translate(test.r, test.d)
			require.Equal(t, test.out, out)
			require.Equal(t, geom.Delta(test.r), geom.Delta(out))
		})
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	deltas := []int8{0, 1, -1, 64, -64, math.MaxInt8, math.MinInt8}

	for lo := math.MinInt8; lo <= math.MaxInt8; lo += 2 {
		for hi := lo; hi <= math.MaxInt8; hi += 3 {
			r := geom.Rt(int8(lo), int8(-hi-1), int8(hi), int8(-lo-1))
			for _, dx := range deltas {
				for _, dy := range deltas {
					d := geom.Pt(dx, dy)
					out := wrapping.Translate(r, d)
					require.Equal(t, r, wrapping.Translate(out, d.Neg()), "translate %v by %v", r, d)
				}
			}
		}
	}
}

func TestTranslateUnsigned(t *testing.T) {
	r := geom.Rt[uint16](0, 0, 9, 9)
	out := wrapping.Translate(r, geom.Pt[int32](-5, math.MaxUint16+1))
	require.Equal(t, geom.Rt[uint16](math.MaxUint16-4, 0, 4, 9), out)
	require.Equal(t, r, wrapping.Translate(out, geom.Pt[int32](5, 0)))
}

func TestAdd(t *testing.T) {
	r := geom.Rt[uint8](0, 10, 255, 20)
	wrapping.AddAssign(&r, geom.Rt[int16](-1, 250, 1, 0))
	require.Equal(t, geom.Rt[uint8](255, 4, 0, 20), r)
}

func TestResize(t *testing.T) {
	require.Equal(t, geom.Rt[int32](3, 3, 5, 5), wrapping.Resize(geom.Rt[int32](0, 0, 9, 9), 3))
	require.Equal(t, geom.Rt[uint8](255, 255, 5, 5), wrapping.Resize(geom.Rt[uint8](0, 0, 3, 3), 7))
	require.Equal(t, geom.Rt[uint8](0, 0, 3, 3), wrapping.Resize(geom.Rt[uint8](0, 0, 3, 3), 1))

	r := geom.Rt[int8](120, 120, 127, 127)
	wrapping.ResizeAssign(&r, 10)
	require.Equal(t, geom.Rt[int8](119, 119, -128, -128), r)

	require.Equal(t, geom.Rt[uint8](126, 126, 129, 129), wrapping.Resize(geom.Largest[uint8](), 4))
	require.Equal(t, geom.Rt[int8](-2, -2, 1, 1), wrapping.Resize(geom.Largest[int8](), 4))
}

func TestInflateDeflate(t *testing.T) {
	require.Equal(t, geom.Rt[int8](127, 127, -128, -128), wrapping.Inflate(geom.Largest[int8]()))
	require.Equal(t, geom.Rt[int8](-127, -127, 126, 126), wrapping.Deflate(geom.Largest[int8]()))

	r := geom.Rt[int8](0, 0, 9, 1)
	wrapping.DeflateAssign(&r)
	require.Equal(t, geom.Rt[int8](0, 0, 9, 1), r)

	wrapping.InflateAssign(&r)
	require.Equal(t, geom.Rt[int8](-1, -1, 10, 2), r)
}

func TestTranslate4(t *testing.T) {
	r := geom.Largest4[uint8]()
	out := wrapping.Translate4(r, geom.Pt4(1, -1, 256, 0))
	require.Equal(t, geom.Rt4(geom.Pt4[uint8](1, 255, 0, 0), geom.Pt4[uint8](0, 254, 255, 255)), out)

	wrapping.Translate4Assign(&out, geom.Pt4(-1, 1, 0, 0))
	require.Equal(t, r, out)
}
