package numfmt

import (
	"math"

	"github.com/n-r-w/numfmt/internal/dragonbox"
	"github.com/n-r-w/numfmt/internal/intconv"
)

// WriteFloat writes v's shortest round-tripping decimal representation
// into buf under opt's grammar and layout rules, returning the number of
// bytes written. buf must be at least FloatBufferSize(opt) bytes; a
// shorter buffer is a programming error and panics with
// ErrBufferTooSmall, matching the spec's "debug-assertion" contract.
func WriteFloat(v float64, buf []byte, opt Options) int {
	if math.IsNaN(v) {
		return writeSpecial(buf, opt.nanLiteral, false)
	}
	if math.IsInf(v, 0) {
		return writeSpecial(buf, opt.infLiteral, v < 0)
	}
	if v == 0 {
		return writeZero(buf, opt, math.Signbit(v))
	}

	negative := math.Signbit(v)
	bits := math.Float64bits(v) &^ (1 << 63)
	d := dragonbox.Format64(bits)
	return writeFinite(buf, d.Bytes, d.DecExp, negative, opt)
}

// WriteFloat32 is the float32 analogue of WriteFloat.
func WriteFloat32(v float32, buf []byte, opt Options) int {
	if math.IsNaN(float64(v)) {
		return writeSpecial(buf, opt.nanLiteral, false)
	}
	if math.IsInf(float64(v), 0) {
		return writeSpecial(buf, opt.infLiteral, v < 0)
	}
	if v == 0 {
		return writeZero(buf, opt, math.Signbit(float64(v)))
	}

	negative := math.Signbit(float64(v))
	bits := math.Float32bits(v) &^ (1 << 31)
	d := dragonbox.Format32(bits)
	return writeFinite(buf, d.Bytes, d.DecExp, negative, opt)
}

func writeSpecial(buf []byte, literal []byte, negative bool) int {
	if len(literal) == 0 {
		panic(ErrLiteralDisabled)
	}
	n := 0
	if negative {
		mustFit(buf, 1)
		buf[0] = '-'
		n = 1
	}
	mustFit(buf[n:], len(literal))
	n += copy(buf[n:], literal)
	return n
}

func writeZero(buf []byte, opt Options, negative bool) int {
	var tmp [4]byte
	n := 0
	if negative {
		tmp[n] = '-'
		n++
	}
	tmp[n] = '0'
	n++
	if !opt.trimTrailingZero {
		tmp[n] = '.'
		n++
		tmp[n] = '0'
		n++
	}
	mustFit(buf, n)
	return copy(buf, tmp[:n])
}

func mustFit(buf []byte, need int) {
	if len(buf) < need {
		panic(ErrBufferTooSmall)
	}
}

// writeFinite lays out a nonzero finite value's digits (as produced by
// internal/dragonbox, where value = 0.digits * 10^decExp) in either fixed
// or scientific notation depending on opt's exponent breaks, after
// applying significant-digit bounds.
func writeFinite(buf []byte, digits []byte, decExp int, negative bool, opt Options) int {
	digits, decExp = applySignificantDigitBounds(digits, decExp, opt)
	exp10 := decExp - 1

	// Fixed notation can spell out a very large or very small magnitude as
	// a long run of zeros (e.g. "1" followed by three hundred zeros), so
	// the scratch space has to scale with exp10, not just digit count.
	scratchLen := len(digits) + 32
	if exp10 >= 0 {
		scratchLen = max(scratchLen, exp10+32)
	} else {
		scratchLen = max(scratchLen, len(digits)-exp10+32)
	}
	scratch := make([]byte, scratchLen)
	n := 0
	if negative {
		scratch[n] = '-'
		n++
	}

	useScientific := int32(exp10) > opt.positiveExponentBreak || int32(exp10) < opt.negativeExponentBreak
	if useScientific {
		n += writeScientific(scratch[n:], digits, exp10, opt)
	} else {
		n += writeFixed(scratch[n:], digits, exp10, opt)
	}

	mustFit(buf, n)
	return copy(buf, scratch[:n])
}

func writeFixed(dst []byte, digits []byte, exp10 int, opt Options) int {
	n := 0
	if exp10 >= 0 {
		intLen := exp10 + 1
		for i := 0; i < intLen; i++ {
			if i < len(digits) {
				dst[n] = digits[i]
			} else {
				dst[n] = '0'
			}
			n++
		}
		frac := []byte(nil)
		if intLen < len(digits) {
			frac = digits[intLen:]
		}
		if len(frac) == 0 {
			if !opt.trimTrailingZero {
				dst[n] = opt.decimalPoint
				n++
				dst[n] = '0'
				n++
			}
		} else {
			dst[n] = opt.decimalPoint
			n++
			n += copy(dst[n:], frac)
		}
	} else {
		dst[n] = '0'
		n++
		dst[n] = opt.decimalPoint
		n++
		for i := 0; i < -exp10-1; i++ {
			dst[n] = '0'
			n++
		}
		n += copy(dst[n:], digits)
	}
	return n
}

func writeScientific(dst []byte, digits []byte, exp10 int, opt Options) int {
	n := 0
	dst[n] = digits[0]
	n++
	if len(digits) > 1 {
		dst[n] = opt.decimalPoint
		n++
		n += copy(dst[n:], digits[1:])
	}
	dst[n] = opt.exponentSymbol
	n++
	if exp10 < 0 {
		dst[n] = '-'
		n++
		exp10 = -exp10
	}
	n += intconv.WriteInt(dst[n:], exp10, 10)
	return n
}

// applySignificantDigitBounds shortens (with round-to-even at the cut
// point under RoundNearestEven, or by dropping the excess digits under
// RoundTruncate) or zero-pads digits to satisfy opt's min/max significant
// digit settings, returning the possibly-adjusted digits and decimal
// exponent (a rounding carry can push decExp up by one, the same way
// rounding 9996 to 3 significant digits produces "100" and bumps the
// exponent).
func applySignificantDigitBounds(digits []byte, decExp int, opt Options) ([]byte, int) {
	if opt.maxSignificantDigits > 0 && len(digits) > opt.maxSignificantDigits {
		if opt.roundMode == RoundTruncate {
			digits = digits[:opt.maxSignificantDigits]
		} else {
			digits, decExp = roundDigits(digits, decExp, opt.maxSignificantDigits)
		}
	}
	if opt.minSignificantDigits > 0 && len(digits) < opt.minSignificantDigits {
		padded := make([]byte, opt.minSignificantDigits)
		copy(padded, digits)
		for i := len(digits); i < len(padded); i++ {
			padded[i] = '0'
		}
		digits = padded
	}
	return digits, decExp
}

func roundDigits(digits []byte, decExp int, n int) ([]byte, int) {
	kept := make([]byte, n)
	copy(kept, digits[:n])

	roundUp := false
	next := digits[n]
	if next > '5' {
		roundUp = true
	} else if next == '5' {
		hasMore := false
		for _, d := range digits[n+1:] {
			if d != '0' {
				hasMore = true
				break
			}
		}
		if hasMore {
			roundUp = true
		} else {
			roundUp = (kept[n-1]-'0')%2 == 1
		}
	}

	if !roundUp {
		return kept, decExp
	}

	i := n - 1
	for i >= 0 {
		if kept[i] == '9' {
			kept[i] = '0'
			i--
			continue
		}
		kept[i]++
		return kept, decExp
	}
	// every kept digit was 9: carries out to a single leading 1.
	out := make([]byte, n)
	out[0] = '1'
	for i := 1; i < n; i++ {
		out[i] = '0'
	}
	return out, decExp + 1
}

// FloatBufferSize returns the minimum buf length WriteFloat/WriteFloat32
// need under opt: a fixed baseline covering sign, decimal point, and
// exponent marker, plus room for opt.maxSignificantDigits digits (or a
// generous default when unset). Fixed notation only ever fires within
// opt's exponent breaks, so a value written in fixed notation never needs
// more leading/trailing zeros than the wider of the two breaks describes;
// widening either break therefore widens the buffer requirement too.
func FloatBufferSize(opt Options) int {
	const baseline = 64
	digitsBudget := opt.maxSignificantDigits
	if digitsBudget == 0 {
		digitsBudget = 17
	}
	size := digitsBudget + baseline

	breakSpan := int(opt.positiveExponentBreak)
	if neg := int(-opt.negativeExponentBreak); neg > breakSpan {
		breakSpan = neg
	}
	size = max(size, digitsBudget+breakSpan+baseline)

	if opt.radix != 10 {
		size = max(size, 256)
	}
	return size
}
