package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteFloat_ShortestDecimal(t *testing.T) {
	opt := Standard()
	var buf [64]byte

	cases := []struct {
		v    float64
		want string
	}{
		{0.1, "0.1"},
		{1.0, "1.0"},
		{3.0e100, "3e100"},
		{math.Copysign(0, -1), "-0.0"},
		{0.0, "0.0"},
	}
	for _, c := range cases {
		n := WriteFloat(c.v, buf[:], opt)
		assert.Equal(t, c.want, string(buf[:n]), "WriteFloat(%v)", c.v)
	}
}

func TestWriteFloat_TrimTrailingZero(t *testing.T) {
	opt, err := NewOptionsBuilder().TrimTrailingZero(true).Build()
	assert.NoError(t, err)
	var buf [64]byte

	n := WriteFloat(1.0, buf[:], opt)
	assert.Equal(t, "1", string(buf[:n]))

	n = WriteFloat(0.0, buf[:], opt)
	assert.Equal(t, "0", string(buf[:n]))
}

func TestWriteFloat_NaNAndInf(t *testing.T) {
	opt := Standard()
	var buf [64]byte

	n := WriteFloat(math.NaN(), buf[:], opt)
	assert.Equal(t, "NaN", string(buf[:n]))

	n = WriteFloat(math.Inf(1), buf[:], opt)
	assert.Equal(t, "Inf", string(buf[:n]))

	n = WriteFloat(math.Inf(-1), buf[:], opt)
	assert.Equal(t, "-Inf", string(buf[:n]))
}

func TestWriteFloat_PanicsOnDisabledLiteral(t *testing.T) {
	opt := JSON()
	var buf [64]byte
	assert.PanicsWithValue(t, ErrLiteralDisabled, func() {
		WriteFloat(math.NaN(), buf[:], opt)
	})
}

func TestWriteFloat_PanicsOnUndersizedBuffer(t *testing.T) {
	opt := Standard()
	var buf [1]byte
	assert.PanicsWithValue(t, ErrBufferTooSmall, func() {
		WriteFloat(123456.789, buf[:], opt)
	})
}

func TestWriteInt_BufferSizeIsExact(t *testing.T) {
	opt := Standard()
	var buf [32]byte
	n := WriteInt[int8](-128, buf[:], opt)
	assert.Equal(t, "-128", string(buf[:n]))
	assert.Equal(t, IntBufferSize[int8](opt), n)
}
