// Package eiselLemire implements the Eisel-Lemire algorithm: a
// constant-time moderate path that resolves the overwhelming majority of
// decimal-to-binary float conversions exactly, without arbitrary
// precision arithmetic, by multiplying the input's 64-bit significand
// against a precomputed 128-bit approximation of the relevant power of
// ten and bounding the resulting rounding error.
//
// Compute64 and Compute32 report ok=false whenever they cannot prove the
// result is correctly rounded; callers fall back to the exact
// arbitrary-precision slow path in that case. The bar for "cannot prove"
// is set deliberately wide here: subnormal and overflow boundaries, and
// any case that looks like an exact tie, are escalated rather than
// resolved in place.
package eiselLemire

import (
	"math/bits"

	"github.com/n-r-w/numfmt/internal/extfloat"
	"github.com/n-r-w/numfmt/internal/limb"
)

// escalationMargin widens the safe-normal-range check beyond the bare
// minimum needed for correctness, trading a small amount of moderate-path
// hit rate for certainty that boundary arithmetic (subnormal rounding,
// overflow-to-infinity) is never attempted here; the slow path resolves
// every escalated case exactly.
const escalationMargin = 2

// Compute64 attempts to resolve mantissa*10^exp10 (mantissa already
// truncated/rounded to fit in 64 bits by the caller, per numlit.Number's
// ManyDigits contract) to the nearest float64.
func Compute64(mantissa uint64, exp10 int64, negative bool) (result float64, ok bool) {
	f, ok := compute(mantissa, exp10, 52, -1022, 1023)
	if !ok {
		return 0, false
	}
	return extfloat.RoundToFloat64(f, negative), true
}

// Compute32 is the float32 analogue of Compute64.
func Compute32(mantissa uint64, exp10 int64, negative bool) (result float32, ok bool) {
	f, ok := compute(mantissa, exp10, 23, -126, 127)
	if !ok {
		return 0, false
	}
	return extfloat.RoundToFloat32(f, negative), true
}

func compute(mantissa uint64, exp10 int64, mantissaBits int, minNormalE, maxNormalE int32) (extfloat.Float, bool) {
	if mantissa == 0 {
		return extfloat.Float{}, true
	}
	if exp10 < limb.SmallestPowerOfTen || exp10 > limb.LargestPowerOfTen {
		// Exact per the conversion's boundary-saturation contract: outside
		// this range the true value cannot round to anything but 0 or Inf,
		// and extfloat.RoundToFloat64/32 already handles both from the
		// degenerate Float{} / overflowing Exp values this would produce,
		// so it is simplest to just escalate and let the slow path's own
		// exact range check make the call.
		return extfloat.Float{}, false
	}

	ctlz := bits.LeadingZeros64(mantissa)
	w := mantissa << uint(ctlz)

	// w*p is a 192-bit product, computed as three 64-bit words (top:mid:lo)
	// from two 128-bit partial products. Every one of those 192 bits
	// matters for the sticky bit: dropping mid or lo (as an earlier version
	// of this function did) makes values that are genuinely just above a
	// halfway boundary look like an exact tie, which round-to-even then
	// resolves the wrong way.
	p := limb.Pow10Entry(int(exp10))
	hi1, lo1 := bits.Mul64(w, p.Hi)
	hi2, lo2 := bits.Mul64(w, p.Lo)

	mid, carry := bits.Add64(lo1, hi2, 0)
	top := hi1 + carry

	rawExp := int64(128) + int64(p.Exp) + exp10 - int64(ctlz)

	// The product of two values each already normalized (top bit set) is
	// short by at most one bit; shift top:mid:lo left by that single bit,
	// carrying across all three words, instead of normalizing top alone
	// and silently discarding the bit it would have pulled in from mid.
	shift := int64(0)
	if top>>63 == 0 {
		shift = 1
		top = top<<1 | mid>>63
		mid = mid<<1 | lo2>>63
		lo2 <<= 1
	}

	E := rawExp - shift + 63
	if E < int64(minNormalE)+escalationMargin || E > int64(maxNormalE)-escalationMargin {
		return extfloat.Float{}, false
	}

	dropBits := 63 - mantissaBits
	roundBit := (top >> uint(dropBits-1)) & 1
	stickyMask := uint64(1)<<uint(dropBits-1) - 1
	sticky := top&stickyMask != 0 || mid != 0 || lo2 != 0

	if roundBit == 1 && !sticky {
		// Exactly half as far as the full 192-bit product can tell, with
		// no further information to break the tie: let the slow path
		// compare against the true decimal value instead of guessing.
		return extfloat.Float{}, false
	}

	// top's own kept/round bits are unaffected by this (dropBits is at
	// least 11 for f64 and 40 for f32, so bit 0 is always part of the
	// discarded tail); it only makes extfloat.RoundToFloat64/32's own,
	// independently recomputed sticky bit agree with the one just proven
	// true here, since a bare *extfloat.Float has no separate sticky flag.
	if sticky {
		top |= 1
	}

	candidate := extfloat.Float{Mant: top, Exp: int32(rawExp - shift)}
	return candidate, true
}
