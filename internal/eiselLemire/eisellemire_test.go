package eiselLemire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute64_ExactValues(t *testing.T) {
	cases := []struct {
		mantissa uint64
		exp10    int64
		want     float64
	}{
		{1, 0, 1},
		{2, 0, 2},
		{1, 1, 10},
		{5, -1, 0.5},
		{25, -2, 0.25},
		{125, -3, 0.125},
		{100, 0, 100},
		{1, 10, 1e10},
	}
	for _, c := range cases {
		got, ok := Compute64(c.mantissa, c.exp10, false)
		require.True(t, ok, "mantissa=%d exp10=%d", c.mantissa, c.exp10)
		assert.Equal(t, c.want, got)
	}
}

func TestCompute64_Negative(t *testing.T) {
	got, ok := Compute64(5, -1, true)
	require.True(t, ok)
	assert.Equal(t, -0.5, got)
}

func TestCompute64_Zero(t *testing.T) {
	got, ok := Compute64(0, 5, false)
	require.True(t, ok)
	assert.Equal(t, float64(0), got)
}

func TestCompute64_OutOfTableRange(t *testing.T) {
	_, ok := Compute64(1, -400, false)
	assert.False(t, ok)

	_, ok = Compute64(1, 400, false)
	assert.False(t, ok)
}

func TestCompute32_ExactValues(t *testing.T) {
	got, ok := Compute32(1, 1, false)
	require.True(t, ok)
	assert.Equal(t, float32(10), got)

	got, ok = Compute32(5, -1, false)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), got)
}
