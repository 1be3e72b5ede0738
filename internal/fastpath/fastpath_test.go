package fastpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTry64_Basic(t *testing.T) {
	v, ok := Try64(125, -2, false)
	require.True(t, ok)
	assert.Equal(t, 1.25, v)
}

func TestTry64_NegativeSign(t *testing.T) {
	v, ok := Try64(5, 0, true)
	require.True(t, ok)
	assert.Equal(t, -5.0, v)
}

func TestTry64_MantissaTooLarge(t *testing.T) {
	_, ok := Try64(1<<53, 0, false)
	assert.False(t, ok)
}

func TestTry64_ExponentOutOfRange(t *testing.T) {
	_, ok := Try64(1, 23, false)
	assert.False(t, ok)

	_, ok = Try64(1, -23, false)
	assert.False(t, ok)
}

func TestTryDisguised64(t *testing.T) {
	// A 20-digit mantissa with 17 trailing zeros appears too wide for
	// the plain fast path, but sheds those zeros into the exponent to
	// reveal a small, exactly-representable mantissa.
	v, ok := TryDisguised64(12300000000000000000, 0, false)
	require.True(t, ok)
	assert.Equal(t, 1.23e19, v)
}

func TestTryDisguised64_ExcessExponent(t *testing.T) {
	// mantissa=1, exp10=30 has no trailing zeros to strip, but 1*10^8
	// absorbs exp10 down to Try64's table range exactly.
	v, ok := TryDisguised64(1, 30, false)
	require.True(t, ok)
	assert.Equal(t, 1e30, v)
}

func TestTryDisguised32_ExcessExponent(t *testing.T) {
	v, ok := TryDisguised32(1, 15, false)
	require.True(t, ok)
	assert.Equal(t, float32(1e15), v)
}

func TestTry32_Basic(t *testing.T) {
	v, ok := Try32(5, -1, false)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), v)
}
