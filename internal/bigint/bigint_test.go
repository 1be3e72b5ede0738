package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_AddAssign(t *testing.T) {
	var x, y Int
	x.FromUint64(1<<63 + 5)
	y.FromUint64(1<<63 + 7)
	x.AddAssign(&y)

	var want Int
	want.FromUint64(1)
	want.Shl(64)
	want.AddSmall(12)
	require.Equal(t, 0, want.Compare(&x))
}

func TestInt_SubAssign(t *testing.T) {
	var x, y Int
	x.FromUint64(100)
	y.FromUint64(37)
	x.SubAssign(&y)

	var want Int
	want.FromUint64(63)
	assert.Equal(t, 0, want.Compare(&x))
}

func TestInt_MulSmall(t *testing.T) {
	var x Int
	x.FromUint64(1 << 32)
	x.MulSmall(1 << 32)

	var want Int
	want.FromUint64(1)
	want.Shl(64)
	assert.Equal(t, 0, want.Compare(&x))
}

func TestInt_MulAssign_Long(t *testing.T) {
	var x, y Int
	x.FromUint64(123456789)
	y.FromUint64(987654321)
	x.MulAssign(&y)

	var want Int
	want.FromUint64(123456789 * 987654321)
	assert.Equal(t, 0, want.Compare(&x))
}

func TestInt_MulAssign_Karatsuba(t *testing.T) {
	var a, b Int
	a.Pow(10, 1000)
	b.Pow(10, 1000)

	var expected Int
	expected.Pow(10, 2000)

	a.MulAssign(&b)
	assert.Equal(t, 0, expected.Compare(&a))
}

func TestInt_Pow(t *testing.T) {
	var x Int
	x.Pow(10, 20)

	ref := "100000000000000000000"
	var want Int
	digits := make([]uint8, len(ref))
	for i, c := range ref {
		digits[i] = uint8(c - '0')
	}
	want.FromBytesRadix(digits, 10)

	assert.Equal(t, 0, want.Compare(&x))
}

func TestInt_ShlShr_RoundTrip(t *testing.T) {
	var x Int
	x.FromUint64(0xDEADBEEFCAFEBABE)
	x.Shl(70)
	lost := x.Shr(70)

	var want Int
	want.FromUint64(0xDEADBEEFCAFEBABE)
	assert.False(t, lost)
	assert.Equal(t, 0, want.Compare(&x))
}

func TestInt_Shr_LosesBits(t *testing.T) {
	var x Int
	x.FromUint64(0b1011)
	lost := x.Shr(1)

	var want Int
	want.FromUint64(0b101)
	assert.True(t, lost)
	assert.Equal(t, 0, want.Compare(&x))
}

func TestInt_Compare(t *testing.T) {
	var a, b Int
	a.FromUint64(5)
	b.FromUint64(10)
	assert.Equal(t, -1, a.Compare(&b))
	assert.Equal(t, 1, b.Compare(&a))
	assert.Equal(t, 0, a.Compare(&a))
}

func TestInt_Hi64(t *testing.T) {
	var x Int
	x.FromUint64(1)
	x.Shl(200)
	x.AddSmall(1)

	hi, sticky := x.Hi64()
	assert.Equal(t, uint64(1)<<63, hi)
	assert.True(t, sticky)
}

func TestInt_Hi64_Exact(t *testing.T) {
	var x Int
	x.FromUint64(0xFFFFFFFFFFFFFFFF)

	hi, sticky := x.Hi64()
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), hi)
	assert.False(t, sticky)
}

func TestInt_FromBytesRadix_Hex(t *testing.T) {
	var x Int
	x.FromBytesRadix([]uint8{0xF, 0xF}, 16)

	var want Int
	want.FromUint64(255)
	assert.Equal(t, 0, want.Compare(&x))
}
