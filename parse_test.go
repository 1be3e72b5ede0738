package numfmt

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat_Simple(t *testing.T) {
	opt := Standard()
	v, n, err := ParseFloat([]byte("1.2345e22"), opt)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, uint64(0x4484E9CA52EB182A), math.Float64bits(v))
}

func TestParseFloat_ExactHalfwayRoundsEven(t *testing.T) {
	opt := Standard()
	v, _, err := ParseFloat([]byte("9007199254740993"), opt)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x4340000000000000), math.Float64bits(v))
}

func TestParseFloat_NearBinadeBoundary(t *testing.T) {
	opt := Standard()
	v, _, err := ParseFloat([]byte("8.988465674311580536566680e307"), opt)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7FE0000000000000), math.Float64bits(v))
}

func TestParseFloat_NegativeZero(t *testing.T) {
	opt := Standard()
	v, _, err := ParseFloat([]byte("-0.0"), opt)
	require.NoError(t, err)
	assert.True(t, math.Signbit(v))
	assert.Equal(t, 0.0, v)
}

func TestParseFloat_NaN(t *testing.T) {
	opt := Standard()
	v, n, err := ParseFloat([]byte("NaN"), opt)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, math.IsNaN(v))
}

func TestParseFloat_Infinity(t *testing.T) {
	opt := Standard()
	v, _, err := ParseFloat([]byte("-Inf"), opt)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}

func TestParseFloat_EmptyExponent(t *testing.T) {
	opt := Standard()
	_, _, err := ParseFloat([]byte("1e"), opt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyExponent)
}

func TestParseFloat_BareDecimalPoint(t *testing.T) {
	opt := Standard()
	_, _, err := ParseFloat([]byte("."), opt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyMantissa)
}

func TestParseFloat_TrailingDotAcceptedAsInteger(t *testing.T) {
	opt := Standard()
	v, n, err := ParseFloat([]byte("1."), opt)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1.0, v)
}

func TestParseFloat_Empty(t *testing.T) {
	opt := Standard()
	_, _, err := ParseFloat([]byte(""), opt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseFloat_RoundTripSamples(t *testing.T) {
	opt := Standard()
	samples := []float64{0.1, 1.0, 100.0, 123.456, 1e300, 1e-300, 2.675, 5e-324, math.MaxFloat64}
	var buf [400]byte
	for _, want := range samples {
		n := WriteFloat(want, buf[:], opt)
		got, consumed, err := ParseFloat(buf[:n], opt)
		require.NoError(t, err)
		assert.Equal(t, n, consumed)
		assert.Equal(t, want, got, "round trip for %v", want)
	}
}

func TestParseInt_Basic(t *testing.T) {
	opt := Standard()
	v, n, err := ParseInt[int32]([]byte("-12345rest"), opt)
	require.NoError(t, err)
	assert.Equal(t, int32(-12345), v)
	assert.Equal(t, 6, n)
}

func TestParseInt_Overflow(t *testing.T) {
	opt := Standard()
	_, _, err := ParseInt[int64]([]byte("-170141183460469231731687303715884105728"), opt)
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindUnderflow, pe.Kind)
}

func TestParseInt_Empty(t *testing.T) {
	opt := Standard()
	_, _, err := ParseInt[int64]([]byte(""), opt)
	require.Error(t, err)
}

func TestWriteInt_RoundTrip(t *testing.T) {
	opt := Standard()
	var buf [32]byte
	n := WriteInt[int64](-987654321, buf[:], opt)
	v, consumed, err := ParseInt[int64](buf[:n], opt)
	require.NoError(t, err)
	assert.Equal(t, int64(-987654321), v)
	assert.Equal(t, n, consumed)
}
