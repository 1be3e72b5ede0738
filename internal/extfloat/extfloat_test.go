package extfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_ShiftsTopBitIntoPlace(t *testing.T) {
	f := Float{Mant: 1, Exp: 0}
	shift := f.Normalize()
	assert.Equal(t, 63, shift)
	assert.Equal(t, uint64(1)<<63, f.Mant)
	assert.Equal(t, int32(-63), f.Exp)
}

func TestNormalize_AlreadyNormalizedIsNoop(t *testing.T) {
	f := Float{Mant: 1 << 63, Exp: 5}
	shift := f.Normalize()
	assert.Equal(t, 0, shift)
	assert.Equal(t, uint64(1)<<63, f.Mant)
}

func TestNormalize_ZeroMantissaLeftAlone(t *testing.T) {
	f := Float{Mant: 0, Exp: 7}
	shift := f.Normalize()
	assert.Equal(t, 0, shift)
	assert.Equal(t, int32(7), f.Exp)
}

func decompose64(v float64) Float {
	bits := math.Float64bits(v)
	biased := bits >> 52 & 0x7FF
	frac := bits & (1<<52 - 1)
	if biased == 0 {
		return Float{Mant: frac, Exp: -1074}
	}
	return Float{Mant: frac | 1<<52, Exp: int32(biased) - 1023 - 52}
}

func TestRoundToFloat64_ExactValueRoundTrips(t *testing.T) {
	for _, want := range []float64{1.0, 0.5, 3.141592653589793, 100.0, 1e300, 5e-324, math.MaxFloat64} {
		got := RoundToFloat64(decompose64(want), false)
		assert.Equal(t, want, got, "round trip for %v", want)
	}
}

func TestRoundToFloat64_NegativeSign(t *testing.T) {
	got := RoundToFloat64(decompose64(2.5), true)
	assert.Equal(t, -2.5, got)
	assert.True(t, math.Signbit(got))
}

func TestRoundToFloat64_OverflowSaturatesToInf(t *testing.T) {
	f := Float{Mant: 1 << 63, Exp: 2000}
	got := RoundToFloat64(f, false)
	assert.True(t, math.IsInf(got, 1))
}

func TestRoundToFloat64_UnderflowGoesToZero(t *testing.T) {
	f := Float{Mant: 1 << 63, Exp: -2000}
	got := RoundToFloat64(f, false)
	assert.Equal(t, 0.0, got)
}

func TestRoundToFloat64_RoundsTiesToEven(t *testing.T) {
	// Mant has its round bit set with nothing below it (an exact tie) and
	// an even bit just above the cut, so the tie must round down.
	even := Float{Mant: (uint64(1) << 63) | (1 << 10), Exp: -63}
	gotEven := RoundToFloat64(even, false)

	odd := Float{Mant: (uint64(1)<<63 | 1<<11) | (1 << 10), Exp: -63}
	gotOdd := RoundToFloat64(odd, false)

	assert.NotEqual(t, gotEven, gotOdd)
}

func TestRoundToFloat32_ExactValueRoundTrips(t *testing.T) {
	for _, want := range []float32{1.0, 0.5, 100.0, 1e30, 1e-30} {
		bits := math.Float32bits(want)
		biased := bits >> 23 & 0xFF
		frac := uint64(bits & (1<<23 - 1))
		var f Float
		if biased == 0 {
			f = Float{Mant: frac, Exp: -149}
		} else {
			f = Float{Mant: frac | 1<<23, Exp: int32(biased) - 127 - 23}
		}
		got := RoundToFloat32(f, false)
		assert.Equal(t, want, got, "round trip for %v", want)
	}
}

func TestPack64_RoundTripsThroughFloat64frombits(t *testing.T) {
	got := Pack64(1023, 0, false)
	assert.Equal(t, 1.0, got)

	got = Pack64(1023, 0, true)
	assert.Equal(t, -1.0, got)
}

func TestPack32_RoundTripsThroughFloat32frombits(t *testing.T) {
	got := Pack32(127, 0, false)
	assert.Equal(t, float32(1.0), got)
}
