// Package bigint implements a fixed-capacity, allocation-free arbitrary
// precision unsigned integer used by the slow parsing path and by the
// decimal-to-binary conversion's exactness checks. Every Int lives on the
// stack: there is no backing slice, so passing one by value copies the
// whole limb array. Callers that need to pass one around cheaply should
// use a pointer receiver, the way the rest of this package's methods do.
package bigint

import "github.com/n-r-w/numfmt/internal/limb"

// maxLimbs bounds the largest value this package ever needs to hold: the
// slow path builds both the decimal mantissa scaled by a power of the
// input radix and the halfway point between two adjacent floats, each
// comfortably under 2^12000 bits for any digit string this module accepts
// (see internal/slowpath's maxDigitsConsidered). 192 64-bit limbs covers
// 12288 bits, which leaves headroom above that ceiling.
const maxLimbs = 192

// Int is an unsigned arbitrary-precision integer with a fixed-size limb
// array. The zero value is the integer zero and is ready to use.
type Int struct {
	limbs [maxLimbs]limb.Word
	n     int // number of significant limbs; limbs[n:] are not meaningful
}

// FromUint64 sets x to v and returns x, for chaining.
func (x *Int) FromUint64(v uint64) *Int {
	if v == 0 {
		x.n = 0
		return x
	}
	x.limbs[0] = v
	x.n = 1
	return x
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.n == 0
}

// normalize drops trailing zero limbs so n again reflects the true limb
// count, maintaining the invariant that limbs[n-1] != 0 whenever n > 0.
func (x *Int) normalize() {
	for x.n > 0 && x.limbs[x.n-1] == 0 {
		x.n--
	}
}

// AddAssign sets x = x + y.
func (x *Int) AddAssign(y *Int) *Int {
	n := x.n
	if y.n > n {
		n = y.n
	}
	var carry limb.Word
	for i := 0; i < n; i++ {
		var a, b limb.Word
		if i < x.n {
			a = x.limbs[i]
		}
		if i < y.n {
			b = y.limbs[i]
		}
		s, c := limb.AddWithCarry(a, b, carry)
		x.limbs[i] = s
		carry = c
	}
	if carry != 0 {
		x.limbs[n] = carry
		n++
	}
	x.n = n
	x.normalize()
	return x
}

// SubAssign sets x = x - y. y must be <= x; otherwise the result is
// undefined (this package never needs signed results).
func (x *Int) SubAssign(y *Int) *Int {
	var borrow limb.Word
	n := x.n
	for i := 0; i < n; i++ {
		var b limb.Word
		if i < y.n {
			b = y.limbs[i]
		}
		d, bo := limb.SubWithBorrow(x.limbs[i], b, borrow)
		x.limbs[i] = d
		borrow = bo
	}
	x.n = n
	x.normalize()
	return x
}

// MulSmall sets x = x * v for a single-limb multiplier v.
func (x *Int) MulSmall(v limb.Word) *Int {
	if v == 0 || x.n == 0 {
		x.n = 0
		return x
	}
	var carry limb.Word
	for i := 0; i < x.n; i++ {
		lo, hi := limb.MulFull(x.limbs[i], v)
		s, c := limb.AddWithCarry(lo, carry, 0)
		x.limbs[i] = s
		carry = hi + c
	}
	n := x.n
	if carry != 0 {
		x.limbs[n] = carry
		n++
	}
	x.n = n
	x.normalize()
	return x
}

// AddSmall sets x = x + v for a single-limb addend v.
func (x *Int) AddSmall(v limb.Word) *Int {
	carry := v
	i := 0
	for carry != 0 {
		if i >= x.n {
			x.limbs[i] = carry
			x.n = i + 1
			return x
		}
		s, c := limb.AddWithCarry(x.limbs[i], carry, 0)
		x.limbs[i] = s
		carry = c
		i++
	}
	return x
}

// karatsubaThreshold is the limb count above which MulAssign switches from
// textbook long multiplication to Karatsuba's divide-and-conquer scheme.
// Below this size the O(n^2) long multiply's small constant factor beats
// Karatsuba's O(n^1.585) with its recursion overhead; this crossover point
// is the usual rule of thumb for 64-bit limbs.
const karatsubaThreshold = 32

// MulAssign sets x = x * y.
func (x *Int) MulAssign(y *Int) *Int {
	if x.n == 0 || y.n == 0 {
		x.n = 0
		return x
	}
	var result Int
	if x.n < karatsubaThreshold || y.n < karatsubaThreshold {
		mulLong(&result, x, y)
	} else {
		mulKaratsuba(&result, x, y)
	}
	*x = result
	return x
}

func mulLong(dst, a, b *Int) {
	dst.n = 0
	for i := 0; i < a.n; i++ {
		av := a.limbs[i]
		if av == 0 {
			continue
		}
		var carry limb.Word
		for j := 0; j < b.n; j++ {
			lo, hi := limb.MulFull(av, b.limbs[j])
			s1, c1 := limb.AddWithCarry(dst.limbs[i+j], lo, 0)
			s2, c2 := limb.AddWithCarry(s1, carry, 0)
			dst.limbs[i+j] = s2
			carry = hi + c1 + c2
		}
		k := i + b.n
		for carry != 0 {
			s, c := limb.AddWithCarry(dst.limbs[k], carry, 0)
			dst.limbs[k] = s
			carry = c
			k++
		}
		if k > dst.n {
			dst.n = k
		}
	}
	dst.normalize()
}

// mulKaratsuba splits a and b at the half-limb boundary and combines three
// half-size products instead of four, the standard Karatsuba trick. The
// halves are built as temporary Ints on the stack; all recursion bottoms
// out in mulLong once a half falls below karatsubaThreshold.
func mulKaratsuba(dst, a, b *Int) {
	n := a.n
	if b.n > n {
		n = b.n
	}
	half := n / 2

	var aLo, aHi, bLo, bHi Int
	splitAt(a, half, &aLo, &aHi)
	splitAt(b, half, &bLo, &bHi)

	var z0, z2, mid Int
	z0.MulAssign2(&aLo, &bLo)
	z2.MulAssign2(&aHi, &bHi)

	var sumA, sumB Int
	sumA.CopyFrom(&aLo).AddAssign(&aHi)
	sumB.CopyFrom(&bLo).AddAssign(&bHi)
	mid.MulAssign2(&sumA, &sumB)
	mid.SubAssign(&z0)
	mid.SubAssign(&z2)

	dst.n = 0
	dst.CopyFrom(&z0)
	dst.addShifted(&mid, half)
	dst.addShifted(&z2, 2*half)
}

// MulAssign2 sets dst = a*b without requiring dst to already equal a, used
// internally by the Karatsuba split to avoid aliasing temporaries.
func (dst *Int) MulAssign2(a, b *Int) *Int {
	if a.n < karatsubaThreshold || b.n < karatsubaThreshold {
		mulLong(dst, a, b)
		return dst
	}
	mulKaratsuba(dst, a, b)
	return dst
}

func splitAt(src *Int, at int, lo, hi *Int) {
	lo.n = 0
	if at > src.n {
		at = src.n
	}
	copy(lo.limbs[:at], src.limbs[:at])
	lo.n = at
	lo.normalize()

	hiLen := src.n - at
	hi.n = 0
	if hiLen > 0 {
		copy(hi.limbs[:hiLen], src.limbs[at:src.n])
		hi.n = hiLen
		hi.normalize()
	}
}

// CopyFrom sets x = y and returns x.
func (x *Int) CopyFrom(y *Int) *Int {
	x.limbs = y.limbs
	x.n = y.n
	return x
}

// addShifted sets x = x + (y << (shift*WordBits)), i.e. adds y at a limb
// offset, the accumulation step Karatsuba needs for its three partial
// products.
func (x *Int) addShifted(y *Int, shift int) {
	if y.n == 0 {
		return
	}
	var carry limb.Word
	n := shift + y.n
	if x.n > n {
		n = x.n
	}
	for i := shift; i < shift+y.n; i++ {
		s, c := limb.AddWithCarry(x.limbs[i], y.limbs[i-shift], carry)
		x.limbs[i] = s
		carry = c
	}
	for i := shift + y.n; carry != 0; i++ {
		s, c := limb.AddWithCarry(x.limbs[i], carry, 0)
		x.limbs[i] = s
		carry = c
		if i+1 > n {
			n = i + 1
		}
	}
	if n > x.n {
		x.n = n
	}
	x.normalize()
}

// Shl sets x = x << bits.
func (x *Int) Shl(bitCount int) *Int {
	if x.n == 0 || bitCount == 0 {
		return x
	}
	limbShift := bitCount / limb.WordBits
	bitShift := bitCount % limb.WordBits

	if limbShift > 0 {
		for i := x.n - 1; i >= 0; i-- {
			x.limbs[i+limbShift] = x.limbs[i]
		}
		for i := 0; i < limbShift; i++ {
			x.limbs[i] = 0
		}
		x.n += limbShift
	}
	if bitShift > 0 {
		var carry limb.Word
		for i := limbShift; i < x.n; i++ {
			v := x.limbs[i]
			x.limbs[i] = (v << uint(bitShift)) | carry
			carry = v >> uint(limb.WordBits-bitShift)
		}
		if carry != 0 {
			x.limbs[x.n] = carry
			x.n++
		}
	}
	x.normalize()
	return x
}

// Shr sets x = x >> bits and reports whether any set bit was shifted out
// (used by the slow path to know whether a truncation was exact).
func (x *Int) Shr(bitCount int) (lostBits bool) {
	if bitCount == 0 || x.n == 0 {
		return false
	}
	limbShift := bitCount / limb.WordBits
	bitShift := bitCount % limb.WordBits

	for i := 0; i < limbShift && i < x.n; i++ {
		if x.limbs[i] != 0 {
			lostBits = true
		}
	}
	if limbShift >= x.n {
		wasNonZero := !x.IsZero()
		x.n = 0
		return wasNonZero
	}

	for i := 0; i < x.n-limbShift; i++ {
		x.limbs[i] = x.limbs[i+limbShift]
	}
	x.n -= limbShift
	for i := x.n; i < x.n+limbShift; i++ {
		x.limbs[i] = 0
	}

	if bitShift > 0 {
		mask := (limb.Word(1) << uint(bitShift)) - 1
		if x.limbs[0]&mask != 0 {
			lostBits = true
		}
		var carry limb.Word
		for i := x.n - 1; i >= 0; i-- {
			v := x.limbs[i]
			x.limbs[i] = (v >> uint(bitShift)) | carry
			carry = v << uint(limb.WordBits-bitShift)
		}
	}
	x.normalize()
	return lostBits
}

// Compare returns -1, 0, or 1 as x is less than, equal to, or greater
// than y.
func (x *Int) Compare(y *Int) int {
	if x.n != y.n {
		if x.n < y.n {
			return -1
		}
		return 1
	}
	for i := x.n - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// BitLen returns the number of bits needed to represent x.
func (x *Int) BitLen() int {
	return limb.BitLen(x.limbs[:x.n])
}

// Hi64 returns the top 64 bits of x as if x were shifted so its highest
// set bit sits at bit 63, along with whether any lower bit was nonzero
// (the sticky bit the slow path needs for correct rounding).
func (x *Int) Hi64() (hi uint64, sticky bool) {
	if x.n == 0 {
		return 0, false
	}
	if x.n == 1 {
		lz := limb.LeadingZeros(x.limbs[:1])
		return x.limbs[0] << uint(lz), false
	}
	bitLen := x.BitLen()
	var tmp Int
	tmp.CopyFrom(x)
	sticky = tmp.Shr(bitLen - 64)
	hi = tmp.limbs[0]
	return hi, sticky
}

// Pow sets x = base^exp using factor-out-powers-of-two then square and
// multiply: base is split into its odd part and a power of two, the
// squaring loop runs over the smaller odd part, and the power of two is
// applied at the end as a single left shift.
func (x *Int) Pow(base limb.Word, exp uint64) *Int {
	if exp == 0 {
		x.FromUint64(1)
		return x
	}
	twos := 0
	for base != 0 && base&1 == 0 {
		base >>= 1
		twos++
	}
	x.FromUint64(base)
	result := Int{}
	result.FromUint64(1)
	e := exp
	b := *x
	for e > 0 {
		if e&1 == 1 {
			result.MulAssign(&b)
		}
		e >>= 1
		if e > 0 {
			b.MulAssign(&b)
		}
	}
	*x = result
	x.Shl(twos * int(exp))
	return x
}

// FromBytesRadix parses digits (in the given radix, most significant
// digit first, values already resolved via limb.DigitValue by the
// caller) into x.
func (x *Int) FromBytesRadix(digitValues []uint8, radix int) *Int {
	x.n = 0
	for _, d := range digitValues {
		x.MulSmall(limb.Word(radix))
		x.AddSmall(limb.Word(d))
	}
	return x
}
