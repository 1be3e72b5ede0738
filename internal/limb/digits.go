package limb

import "math/bits"

// digitChars maps a digit value 0..35 to its canonical (lowercase) ASCII
// character.
const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// DigitChar returns the canonical ASCII character for digit value v.
// v must be in [0, 36).
func DigitChar(v int) byte {
	return digitChars[v]
}

// digitValues maps every byte to its digit value, with -1 meaning "not a
// digit in any supported radix". Built once at
// package init; shared read-only across the process.
var digitValues [256]int8

func init() {
	for i := range digitValues {
		digitValues[i] = -1
	}
	for v := 0; v < 10; v++ {
		digitValues['0'+v] = int8(v)
	}
	for v := 0; v < 26; v++ {
		digitValues['a'+v] = int8(10 + v)
		digitValues['A'+v] = int8(10 + v)
	}
}

// DigitValue returns the value of ASCII byte c as a digit in the given
// radix, case-insensitive for letter digits. ok is false if c is not a
// valid digit for radix.
func DigitValue(c byte, radix int) (value int, ok bool) {
	v := digitValues[c]
	if v < 0 || int(v) >= radix {
		return 0, false
	}
	return int(v), true
}

// IsDigit reports whether c is a valid digit in radix.
func IsDigit(c byte, radix int) bool {
	_, ok := DigitValue(c, radix)
	return ok
}

// SmallPowers returns the table of powers radix^0..=radix^e, where e is the
// largest exponent such that radix^e fits in a single 64-bit Word; its
// length minus one is e.
//
// Computed on each call rather than baked into a static table: there are 35
// supported radices and the table is tiny (at most 64 entries for radix 2).
// Each call allocates a new slice; callers that need the table repeatedly
// keep their own copy.
func SmallPowers(radix int) []Word {
	if radix < 2 || radix > 36 {
		panic("limb: unsupported radix")
	}
	powers := make([]Word, 0, 41)
	p := Word(1)
	powers = append(powers, p)
	for {
		hi, lo := bits.Mul64(p, Word(radix))
		if hi != 0 {
			break
		}
		p = lo
		powers = append(powers, p)
	}
	return powers
}

// Large powers of the input radix (radix^2^k and beyond, needed to scale
// the slow path's exact comparison) are deliberately not cached in a
// table the way SmallPowers is above: bigint.Int.Pow already computes any
// such power on demand via square-and-multiply, and a table would need
// sizing per radix and per target exponent magnitude (up to several
// hundred for decimal, more for other radices) with no reuse across calls
// in this core.
