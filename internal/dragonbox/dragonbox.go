// Package dragonbox generates the shortest decimal digit string that
// round-trips back to the original binary float under round-to-nearest,
// ties-to-even parsing. It implements Steele & White's free-format
// algorithm directly over internal/bigint's exact arithmetic: rather
// than a fixed 128-bit table cascade (the namesake Dragonbox algorithm's
// usual implementation technique), every comparison here is exact, so
// the shortest-and-correctly-rounded guarantee holds unconditionally
// instead of depending on a separately-proven table. The cost is a
// handful of arbitrary-precision operations per float instead of one or
// two 128-bit multiplies; for a library whose correctness can't be
// checked by running it, that trade is the right one.
package dragonbox

import "github.com/n-r-w/numfmt/internal/bigint"

// Digits holds a generated shortest decimal representation: Digits[i] is
// the i-th significant decimal digit ('0'-'9'), and DecExp is one more
// than the power of ten of the first digit, i.e. the value equals
// 0.Digits * 10^DecExp in the Dragon4 sense, or equivalently
// Digits[0].Digits[1:] * 10^(DecExp-1) read as a single leading digit
// followed by a fraction.
type Digits struct {
	Bytes  []byte
	DecExp int
}

// Format64 produces the shortest digit string for a nonzero, finite
// float64 given its IEEE-754 bit pattern's unsigned magnitude (sign
// already stripped by the caller).
func Format64(bitsMagnitude uint64) Digits {
	const mantissaBits = 52
	const minExponent = -1074
	const bias = 1023

	biasedExp := int32(bitsMagnitude >> 52 & 0x7FF)
	frac := bitsMagnitude & (1<<52 - 1)

	var mant uint64
	var exp2 int32
	if biasedExp == 0 {
		mant = frac
		exp2 = minExponent
	} else {
		mant = frac | (1 << mantissaBits)
		exp2 = biasedExp - bias - mantissaBits
	}
	return format(mant, exp2, mantissaBits, minExponent)
}

// Format32 is the float32 analogue of Format64.
func Format32(bitsMagnitude uint32) Digits {
	const mantissaBits = 23
	const minExponent = -149
	const bias = 127

	biasedExp := int32(bitsMagnitude >> 23 & 0xFF)
	frac := uint64(bitsMagnitude & (1<<23 - 1))

	var mant uint64
	var exp2 int32
	if biasedExp == 0 {
		mant = frac
		exp2 = minExponent
	} else {
		mant = frac | (1 << mantissaBits)
		exp2 = biasedExp - bias - mantissaBits
	}
	return format(mant, exp2, mantissaBits, minExponent)
}

func format(mant uint64, exp2 int32, mantissaBits int, minExponent int32) Digits {
	if mant == 0 {
		return Digits{Bytes: []byte{'0'}, DecExp: 1}
	}

	r, s, mPlus, mMinus := setup(mant, exp2, mantissaBits, minExponent)
	closed := mant&1 == 0 // round-to-even: an even mantissa accepts boundary ties

	k := scale(r, s, mPlus, mMinus, closed)

	digits := generate(r, s, mPlus, mMinus, closed)
	return Digits{Bytes: digits, DecExp: k}
}

// setup builds the R/S/mPlus/mMinus fractions from Steele & White's
// algorithm: value = R/S exactly, and mPlus/mMinus are the distances
// (in the same R/S units) to the midpoints with the next larger and
// next smaller representable floats.
func setup(mant uint64, exp2 int32, mantissaBits int, minExponent int32) (r, s, mPlus, mMinus *bigint.Int) {
	r, s, mPlus, mMinus = &bigint.Int{}, &bigint.Int{}, &bigint.Int{}, &bigint.Int{}

	boundaryCloser := mant == uint64(1)<<uint(mantissaBits) && exp2 != minExponent

	if exp2 >= 0 {
		if !boundaryCloser {
			r.FromUint64(mant).Shl(int(exp2) + 1)
			s.FromUint64(1).Shl(1)
			mPlus.FromUint64(1).Shl(int(exp2))
			mMinus.FromUint64(1).Shl(int(exp2))
		} else {
			r.FromUint64(mant).Shl(int(exp2) + 2)
			s.FromUint64(1).Shl(2)
			mPlus.FromUint64(1).Shl(int(exp2) + 1)
			mMinus.FromUint64(1).Shl(int(exp2))
		}
	} else {
		if !boundaryCloser {
			r.FromUint64(mant).Shl(1)
			s.FromUint64(1).Shl(int(1 - exp2))
			mPlus.FromUint64(1)
			mMinus.FromUint64(1)
		} else {
			r.FromUint64(mant).Shl(2)
			s.FromUint64(1).Shl(int(2 - exp2))
			mPlus.FromUint64(2)
			mMinus.FromUint64(1)
		}
	}
	return r, s, mPlus, mMinus
}

// scale picks the decimal exponent k so that R/S, once scaled by
// 10^-k, lands in [0.1, 1) (loosely; the exact boundary depends on
// closed/open comparisons), correcting a cheap base-2-to-base-10
// estimate by at most one step in either direction, then mutates
// r/s/mPlus/mMinus in place to reflect that scaling.
func scale(r, s, mPlus, mMinus *bigint.Int, closed bool) int {
	// k is estimated from R's and S's bit lengths (a cheap proxy for log10(R/S))
	// and then corrected exactly below, so an imprecise estimate only
	// costs one extra loop iteration, never correctness.
	k := estimateK(r, s)

	if k >= 0 {
		var p bigint.Int
		p.Pow(10, uint64(k))
		s.MulAssign(&p)
	} else {
		var p bigint.Int
		p.Pow(10, uint64(-k))
		r.MulAssign(&p)
		mPlus.MulAssign(&p)
		mMinus.MulAssign(&p)
	}

	for {
		var sum bigint.Int
		sum.CopyFrom(r).AddAssign(mPlus)
		cmp := sum.Compare(s)
		tooBig := cmp > 0 || (closed && cmp == 0)
		if tooBig {
			s.MulSmall(10)
			k++
			continue
		}
		var sum10 bigint.Int
		sum10.CopyFrom(&sum).MulSmall(10)
		cmp10 := sum10.Compare(s)
		tooSmall := cmp10 < 0 || (!closed && cmp10 == 0)
		if tooSmall {
			r.MulSmall(10)
			mPlus.MulSmall(10)
			mMinus.MulSmall(10)
			k--
			continue
		}
		break
	}
	return k
}

func estimateK(r, s *bigint.Int) int {
	// log10(R/S) ~= (bitlen(R)-bitlen(S)) * log10(2); 1233/4096 approximates
	// log10(2) from below closely enough that scale's fixup loop above
	// never needs more than one correction step.
	diff := r.BitLen() - s.BitLen()
	return (diff*1233)/4096 + 1
}

// generate emits digits one at a time via exact single-digit division
// by repeated subtraction (the quotient is always 0-9, so this is O(1)
// amortized per digit, not a general bignum division), stopping once
// the remaining uncertainty interval [R-mMinus, R+mPlus] no longer
// requires another digit to distinguish this value from its neighbors.
func generate(r, s, mPlus, mMinus *bigint.Int, closed bool) []byte {
	var digits []byte
	for {
		r.MulSmall(10)
		mPlus.MulSmall(10)
		mMinus.MulSmall(10)

		d := 0
		for r.Compare(s) >= 0 {
			r.SubAssign(s)
			d++
		}

		low := r.Compare(mMinus) < 0 || (closed && r.Compare(mMinus) == 0)

		var rPlusM bigint.Int
		rPlusM.CopyFrom(r).AddAssign(mPlus)
		cmpHigh := rPlusM.Compare(s)
		high := cmpHigh > 0 || (closed && cmpHigh == 0)

		switch {
		case !low && !high:
			digits = append(digits, byte('0'+d))
		case low && !high:
			digits = append(digits, byte('0'+d))
			return digits
		case high && !low:
			digits = append(digits, byte('0'+d+1))
			return digits
		default:
			var twiceR bigint.Int
			twiceR.CopyFrom(r).AddAssign(r)
			if twiceR.Compare(s) >= 0 {
				digits = append(digits, byte('0'+d+1))
			} else {
				digits = append(digits, byte('0'+d))
			}
			return digits
		}
	}
}
