// Package numlit decomposes the textual digits of a number literal into
// the pieces the parsing cascade needs, without itself doing any
// arithmetic: it is the boundary between "bytes the caller gave us" and
// "a structured decimal value ready for the fast, moderate, or slow
// path".
package numlit

import "github.com/n-r-w/numfmt/internal/limb"

// maxSignificantDigits returns how many digits in the given radix
// Decompose folds into Mantissa/ManyDigits tracking before switching to
// "this number has too many digits for the fast paths to matter, remember
// only that it does". limb.SmallPowers(radix) already stops at the last
// power of radix that fits in a uint64, so its length minus one is exactly
// that many digits worth of headroom. Leading zeros of the integer part
// (and of the fraction when the integer part has no nonzero digit) are
// skipped by Decompose and do not count against this limit.
func maxSignificantDigits(radix int) int {
	return len(limb.SmallPowers(radix)) - 1
}

// Number is the structured result of decomposing a digit string: the
// integer and fraction digit runs (as raw ASCII, leading/trailing zeros
// not yet stripped beyond what Decompose does for mantissa purposes),
// the exponent such that value = Mantissa * radix^Exponent (10^Exponent
// for decimal input) when ManyDigits is false, and whether the true value
// needed more digits than fit in Mantissa.
type Number struct {
	Integer    []byte
	Fraction   []byte
	Exponent   int64
	Mantissa   uint64
	Negative   bool
	ManyDigits bool
}

// Decompose folds integer and fraction digit runs in the given radix plus
// a parsed (always base-10) exponent into a Number. It does not validate
// that integer/fraction are non-empty or well-formed digits for radix;
// callers (the root package's literal scanner) are expected to have
// already validated the grammar.
func Decompose(integer, fraction []byte, exponent int64, negative bool, radix int) Number {
	n := Number{
		Integer:  integer,
		Fraction: fraction,
		Negative: negative,
	}
	maxDigits := maxSignificantDigits(radix)

	// Skip leading zeros in the integer part; they contribute nothing to
	// the mantissa and would otherwise waste significant-digit budget.
	intStart := 0
	for intStart < len(integer) && integer[intStart] == '0' {
		intStart++
	}
	digitsSeen := 0
	var mantissa uint64
	for i := intStart; i < len(integer); i++ {
		if digitsSeen == maxDigits {
			n.ManyDigits = true
			break
		}
		v, _ := limb.DigitValue(integer[i], radix)
		mantissa = mantissa*uint64(radix) + uint64(v)
		digitsSeen++
	}

	fracExponent := int64(0)
	if !n.ManyDigits {
		fracStart := 0
		// Leading zeros in the fraction only matter for exponent tracking
		// when the integer part contributed no digits at all; otherwise
		// they are ordinary significant zeros between the point and the
		// first nonzero fraction digit.
		if digitsSeen == 0 {
			for fracStart < len(fraction) && fraction[fracStart] == '0' {
				fracStart++
				fracExponent--
			}
		}
		for i := fracStart; i < len(fraction); i++ {
			if digitsSeen == maxDigits {
				n.ManyDigits = true
				break
			}
			v, _ := limb.DigitValue(fraction[i], radix)
			mantissa = mantissa*uint64(radix) + uint64(v)
			digitsSeen++
			fracExponent--
		}
	}

	n.Mantissa = mantissa
	if n.ManyDigits {
		// The slow path reconstructs the exact value from Integer/Fraction
		// directly rather than from Mantissa, so Exponent here only needs
		// to describe that full digit string's scale: value =
		// (Integer ++ Fraction as an integer) * radix^Exponent.
		n.Exponent = exponent - int64(len(fraction))
	} else {
		n.Exponent = exponent + fracExponent
	}
	return n
}

func equalFoldASCII(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		c := b[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		d := s[i]
		if 'A' <= d && d <= 'Z' {
			d += 'a' - 'A'
		}
		if c != d {
			return false
		}
	}
	return true
}
