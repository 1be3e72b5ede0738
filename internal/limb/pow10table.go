package limb

import "math/big"

// SmallestPowerOfTen and LargestPowerOfTen bound the decimal exponent range
// for which Pow10Entry has a table entry, matching the f64 range from the
// spec (the f32 moderate path reuses the same table and applies its own,
// narrower acceptance range before consulting it).
const (
	SmallestPowerOfTen = -342
	LargestPowerOfTen  = 308
)

// Pow10 is a normalized 128-bit approximation of 5^q: interpreting
// (Hi:Lo) as an unsigned 128-bit integer with its top bit set, the value
// (Hi:Lo) * 2^Exp equals 5^q, correctly rounded to nearest with ties to
// even when 5^q needs more than 128 bits to represent exactly.
//
// This stores the exact exponent per entry rather than deriving it from a
// fixed-point log2(10) multiplier (the classic Eisel-Lemire table layout):
// the two approaches are mathematically equivalent, but storing Exp removes
// an entire class of off-by-one risk in the scaled-log-multiplier constant
// without costing anything at lookup time.
type Pow10 struct {
	Hi  Word
	Lo  Word
	Exp int32
}

// Pow10Entry returns the normalized 5^q table entry for decimal exponent q.
// q must be within [SmallestPowerOfTen, LargestPowerOfTen].
func Pow10Entry(q int) Pow10 {
	return pow10Table[q-SmallestPowerOfTen]
}

var pow10Table = buildPow10Table(SmallestPowerOfTen, LargestPowerOfTen)

// buildPow10Table computes the table once, at package initialization, using
// math/big for exact arbitrary-precision arithmetic. This is the one place
// in the module that reaches for the standard library's big.Int instead of
// internal/bigint: internal/bigint's contract (§4.B) deliberately has no
// division operation (the hot parse/format paths never need one), and
// hand-rolling a correctly-rounded division only to hardcode ~650 resulting
// magic constants would trade a well-tested standard-library primitive for
// a bespoke one exercised nowhere else, for a one-time, off-hot-path
// computation. math/big is never imported outside this init path.
func buildPow10Table(minQ, maxQ int) []Pow10 {
	table := make([]Pow10, maxQ-minQ+1)
	five := big.NewInt(5)
	for q := minQ; q <= maxQ; q++ {
		table[q-minQ] = normalizedPow5(five, q)
	}
	return table
}

func normalizedPow5(five *big.Int, q int) Pow10 {
	if q >= 0 {
		val := new(big.Int).Exp(five, big.NewInt(int64(q)), nil)
		return normalizeBigInt(val)
	}

	denom := new(big.Int).Exp(five, big.NewInt(int64(-q)), nil)
	bitLen := denom.BitLen()
	shift := bitLen + 127
	numerator := new(big.Int).Lsh(big.NewInt(1), uint(shift))

	quo := new(big.Int)
	rem := new(big.Int)
	quo.QuoRem(numerator, denom, rem)

	twiceRem := new(big.Int).Lsh(rem, 1)
	if cmp := twiceRem.Cmp(denom); cmp > 0 || (cmp == 0 && quo.Bit(0) == 1) {
		quo.Add(quo, big.NewInt(1))
	}

	entry := normalizeBigInt(quo)
	entry.Exp -= int32(shift)
	return entry
}

// normalizeBigInt rounds a positive value to a 128-bit mantissa with its
// top bit set, ties to even, returning the exponent that recovers the
// (rounded) value.
func normalizeBigInt(v *big.Int) Pow10 {
	bitLen := v.BitLen()
	if bitLen <= 128 {
		shift := 128 - bitLen
		scaled := new(big.Int).Lsh(v, uint(shift))
		return splitTo128(scaled, int32(-shift))
	}

	shift := bitLen - 128
	rounded := roundShiftRight(v, shift)
	exp := int32(shift)
	if rounded.BitLen() > 128 {
		rounded = new(big.Int).Rsh(rounded, 1)
		exp++
	}
	return splitTo128(rounded, exp)
}

func roundShiftRight(v *big.Int, shift int) *big.Int {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(shift)), big.NewInt(1))
	frac := new(big.Int).And(v, mask)
	truncated := new(big.Int).Rsh(v, uint(shift))
	half := new(big.Int).Lsh(big.NewInt(1), uint(shift-1))
	if cmp := frac.Cmp(half); cmp > 0 || (cmp == 0 && truncated.Bit(0) == 1) {
		truncated.Add(truncated, big.NewInt(1))
	}
	return truncated
}

func splitTo128(v *big.Int, exp int32) Pow10 {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask64).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return Pow10{Hi: hi, Lo: lo, Exp: exp}
}
