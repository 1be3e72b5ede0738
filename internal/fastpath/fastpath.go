// Package fastpath implements the narrow, exact fast path: decimal
// literals whose mantissa and power-of-ten scale are both small enough
// that a single hardware floating-point multiply or divide reproduces
// the correctly-rounded result, with no approximation error to bound.
// Anything outside that range returns ok=false for the Eisel-Lemire or
// slow path to handle instead.
package fastpath

import (
	"math/bits"

	"github.com/n-r-w/numfmt/internal/limb"
)

// pow10Float64 holds every power of ten representable exactly as a
// float64: 10^22 is the largest such power (5^22 needs 52 mantissa bits,
// still within float64's 53), so a single multiply or divide against one
// of these entries introduces no rounding error beyond that single
// operation's own correctly-rounded result.
var pow10Float64 = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// maxExactMantissa64 is 2^53, the largest integer every float64 can
// represent exactly.
const maxExactMantissa64 = 1 << 53

// Try64 attempts mantissa * 10^exp10 as a single exact hardware
// operation. ok is false whenever mantissa or the power of ten falls
// outside the range where that operation is provably exact.
func Try64(mantissa uint64, exp10 int64, negative bool) (float64, bool) {
	if mantissa == 0 {
		var zero float64
		if negative {
			zero = -zero
		}
		return zero, true
	}
	if mantissa >= maxExactMantissa64 {
		return 0, false
	}
	if exp10 < -22 || exp10 > 22 {
		return 0, false
	}

	f := float64(mantissa)
	if exp10 >= 0 {
		f *= pow10Float64[exp10]
	} else {
		f /= pow10Float64[-exp10]
	}
	if negative {
		f = -f
	}
	return f, true
}

// maxExactMantissa32 is 2^24, the largest integer every float32 can
// represent exactly.
const maxExactMantissa32 = 1 << 24

// pow10Float32 mirrors pow10Float64 but only out to the largest power of
// ten a float32 represents exactly; beyond 10^10 a float32's 24-bit
// mantissa can no longer hold 5^n exactly.
var pow10Float32 = [11]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// Try32 is the float32 analogue of Try64.
func Try32(mantissa uint64, exp10 int64, negative bool) (float32, bool) {
	if mantissa == 0 {
		var zero float32
		if negative {
			zero = -zero
		}
		return zero, true
	}
	if mantissa >= maxExactMantissa32 {
		return 0, false
	}
	if exp10 < -10 || exp10 > 10 {
		return 0, false
	}

	f := float32(mantissa)
	if exp10 >= 0 {
		f *= pow10Float32[exp10]
	} else {
		f /= pow10Float32[-exp10]
	}
	if negative {
		f = -f
	}
	return f, true
}

// smallPowers10 is the table of powers of ten that fit in a uint64,
// shared by both disguised-path directions below.
var smallPowers10 = limb.SmallPowers(10)

// TryDisguised64 catches two shapes of "disguised" exact literal that
// Try64 alone rejects:
//
//   - an over-wide mantissa carrying trailing zero digits (round
//     currency-style values such as 12300000000000000000): those zeros
//     contribute no precision, so shifting them into exp10 can bring the
//     mantissa back under maxExactMantissa64 without losing anything.
//   - an out-of-table decimal exponent (values like 1e30, mantissa=1)
//     whose mantissa is small enough that multiplying it up by a power of
//     ten absorbs the excess exponent exactly, landing back inside
//     Try64's +/-22 table range.
//
// Either transformation is lossless by construction - it only ever moves
// digits that were already zero, in one direction or the other - so a
// success here is exact, not an approximation.
func TryDisguised64(mantissa uint64, exp10 int64, negative bool) (float64, bool) {
	if mantissa == 0 {
		var zero float64
		if negative {
			zero = -zero
		}
		return zero, true
	}
	for mantissa%10 == 0 && mantissa != 0 {
		mantissa /= 10
		exp10++
	}
	if f, ok := Try64(mantissa, exp10, negative); ok {
		return f, true
	}
	if exp10 > 22 {
		shift := exp10 - 22
		if shift < int64(len(smallPowers10)) {
			hi, scaled := bits.Mul64(mantissa, smallPowers10[shift])
			if hi == 0 && scaled < maxExactMantissa64 {
				return Try64(scaled, 22, negative)
			}
		}
	}
	return 0, false
}

// TryDisguised32 is the float32 analogue of TryDisguised64.
func TryDisguised32(mantissa uint64, exp10 int64, negative bool) (float32, bool) {
	if mantissa == 0 {
		var zero float32
		if negative {
			zero = -zero
		}
		return zero, true
	}
	for mantissa%10 == 0 && mantissa != 0 {
		mantissa /= 10
		exp10++
	}
	if f, ok := Try32(mantissa, exp10, negative); ok {
		return f, true
	}
	if exp10 > 10 {
		shift := exp10 - 10
		if shift < int64(len(smallPowers10)) {
			hi, scaled := bits.Mul64(mantissa, smallPowers10[shift])
			if hi == 0 && scaled < maxExactMantissa32 {
				return Try32(scaled, 10, negative)
			}
		}
	}
	return 0, false
}
