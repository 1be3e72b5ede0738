// Package slowpath implements the arbitrary-precision fallback: given a
// digit string the fast and Eisel-Lemire paths could not resolve with
// certainty, it determines the single correctly-rounded binary float by
// comparing the exact decimal value against a candidate's ulp
// boundaries using exact integer arithmetic, nudging the candidate until
// the comparison confirms it.
package slowpath

import (
	"math"

	"github.com/n-r-w/numfmt/internal/bigint"
	"github.com/n-r-w/numfmt/internal/extfloat"
	"github.com/n-r-w/numfmt/internal/limb"
	"github.com/n-r-w/numfmt/internal/numlit"
)

// maxDigitsConsidered bounds how many leading significant digits
// contribute to the comparison. A double's smallest ulp, at the
// subnormal extreme, is about 10^-324 relative to its neighbors; any
// digit beyond roughly 800 significant digits changes the exact value by
// far less than that and cannot change the correctly-rounded result, so
// trimming them keeps the arbitrary-precision arithmetic bounded without
// ever changing an answer.
const maxDigitsConsidered = 768

// guardMargin widens the exponent range past internal/limb's
// SmallestPowerOfTen/LargestPowerOfTen before Resolve will trust a
// cheap order-of-magnitude estimate to short-circuit straight to zero
// or infinity, so a legitimate boundary case is never short-circuited
// incorrectly - only inputs unambiguously far outside any float range.
const guardMargin = 64

// Resolve returns the correctly-rounded value for num, computing its own
// radix-independent starting candidate from the exact decimal value and
// refining it by exact comparison. mantissaBits is the target format's
// explicit mantissa width: 52 for float64, 23 for float32.
func Resolve(num numlit.Number, radix int, mantissaBits int) extfloat.Float {
	digits, exp := collectDigits(num, radix)

	order := exp + int64(len(digits))
	if order > int64(limb.LargestPowerOfTen)+guardMargin {
		return overflowFloat()
	}
	if order < int64(limb.SmallestPowerOfTen)-guardMargin {
		return extfloat.Float{}
	}

	var d bigint.Int
	d.FromBytesRadix(digits, radix)
	if d.IsZero() {
		return extfloat.Float{}
	}

	mant, binExp := seedFromDigits(&d, exp, radix, mantissaBits)

	for {
		lowerM, lowerExp := 2*mant-1, binExp-1
		if mant == uint64(1)<<uint(mantissaBits) {
			// At the bottom of a binade the next float down is only half
			// an ulp away, so the halfway point sits a quarter ulp below.
			lowerM, lowerExp = 4*mant-1, binExp-2
		}
		lowerCmp := compareScaled(&d, exp, radix, lowerM, lowerExp)
		upperCmp := compareScaled(&d, exp, radix, 2*mant+1, binExp-1)

		switch {
		case lowerCmp < 0:
			mant, binExp = decrementMantissa(mant, binExp, mantissaBits)
		case lowerCmp == 0:
			if mant%2 == 0 {
				return extfloat.Float{Mant: mant, Exp: binExp}
			}
			m2, e2 := decrementMantissa(mant, binExp, mantissaBits)
			return extfloat.Float{Mant: m2, Exp: e2}
		case upperCmp == 0:
			if mant%2 == 0 {
				return extfloat.Float{Mant: mant, Exp: binExp}
			}
			m2, e2 := incrementMantissa(mant, binExp, mantissaBits)
			return extfloat.Float{Mant: m2, Exp: e2}
		case upperCmp > 0:
			mant, binExp = incrementMantissa(mant, binExp, mantissaBits)
		default:
			return extfloat.Float{Mant: mant, Exp: binExp}
		}
	}
}

func overflowFloat() extfloat.Float {
	// A normalized Float whose scientific exponent comfortably exceeds
	// any supported format's maxNormalE, so extfloat's rounding reports
	// infinity regardless of which format (32 or 64 bit) consumes it.
	return extfloat.Float{Mant: uint64(1) << 63, Exp: 1 << 20}
}

// seedFromDigits derives a starting (mant, binExp) pair for the nudging
// loop directly from d's magnitude, with no assumption that radix is 10:
// log2(d*radix^exp) is computed from d's bit length and top 64 bits (via
// Hi64) plus exp scaled by log2(radix), entirely in the exponent domain so
// the huge values d*radix^exp can reach never need to be formed as an
// actual number. The only part that needs forming is the fractional bits
// right around the binary point, which math.Exp2 recovers directly from
// that same log2 value.
func seedFromDigits(d *bigint.Int, exp int64, radix int, mantissaBits int) (mant uint64, binExp int32) {
	hi, _ := d.Hi64()
	bitLen := d.BitLen()

	log2D := float64(bitLen-64) + math.Log2(float64(hi))
	log2Val := log2D + float64(exp)*math.Log2(float64(radix))

	binExp = int32(math.Floor(log2Val)) - int32(mantissaBits)
	frac := log2Val - float64(binExp)
	mant = uint64(math.Round(math.Exp2(frac)))

	top := uint64(1) << uint(mantissaBits+1)
	if mant >= top {
		mant = top - 1
	}
	if mant < uint64(1)<<uint(mantissaBits) {
		mant = uint64(1) << uint(mantissaBits)
	}
	return mant, binExp
}

func decrementMantissa(mant uint64, binExp int32, mantissaBits int) (uint64, int32) {
	if mant == uint64(1)<<uint(mantissaBits) {
		return uint64(1)<<uint(mantissaBits+1) - 1, binExp - 1
	}
	return mant - 1, binExp
}

func incrementMantissa(mant uint64, binExp int32, mantissaBits int) (uint64, int32) {
	if mant == uint64(1)<<uint(mantissaBits+1)-1 {
		return uint64(1) << uint(mantissaBits), binExp + 1
	}
	return mant + 1, binExp
}

// collectDigits resolves num's integer and fraction runs into digit
// values in the given radix, skipping leading zeros, truncating to
// maxDigitsConsidered leading significant digits and returning the
// exponent adjusted for any digits dropped. When a dropped digit is
// nonzero, a trailing 1 digit is appended one place further down so the
// truncated value still compares strictly above any halfway point it
// would otherwise equal.
func collectDigits(num numlit.Number, radix int) ([]uint8, int64) {
	digits := make([]uint8, 0, len(num.Integer)+len(num.Fraction))
	for _, c := range num.Integer {
		v, _ := limb.DigitValue(c, radix)
		digits = append(digits, uint8(v))
	}
	for _, c := range num.Fraction {
		v, _ := limb.DigitValue(c, radix)
		digits = append(digits, uint8(v))
	}

	for len(digits) > 0 && digits[0] == 0 {
		digits = digits[1:]
	}

	exp := num.Exponent
	if len(digits) > maxDigitsConsidered {
		dropped := len(digits) - maxDigitsConsidered
		nonzeroDropped := false
		for _, v := range digits[maxDigitsConsidered:] {
			nonzeroDropped = nonzeroDropped || v != 0
		}
		digits = digits[:maxDigitsConsidered]
		exp += int64(dropped)
		if nonzeroDropped {
			digits = append(digits, 1)
			exp--
		}
	}
	return digits, exp
}

// compareScaled returns sign(D*radix^decExp - m2*2^binExp), computed by
// clearing both sides' negative exponents via multiplication so the
// final comparison is between two plain integers.
func compareScaled(d *bigint.Int, decExp int64, radix int, m2 uint64, binExp int32) int {
	var left, right bigint.Int
	left.CopyFrom(d)
	if decExp > 0 {
		var p bigint.Int
		p.Pow(limb.Word(radix), uint64(decExp))
		left.MulAssign(&p)
	}
	if binExp < 0 {
		left.Shl(int(-binExp))
	}

	right.FromUint64(m2)
	if decExp < 0 {
		var p bigint.Int
		p.Pow(limb.Word(radix), uint64(-decExp))
		right.MulAssign(&p)
	}
	if binExp > 0 {
		right.Shl(int(binExp))
	}

	return left.Compare(&right)
}
