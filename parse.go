package numfmt

import (
	"math"

	"github.com/n-r-w/numfmt/internal/eiselLemire"
	"github.com/n-r-w/numfmt/internal/extfloat"
	"github.com/n-r-w/numfmt/internal/fastpath"
	"github.com/n-r-w/numfmt/internal/intconv"
	"github.com/n-r-w/numfmt/internal/limb"
	"github.com/n-r-w/numfmt/internal/numlit"
	"github.com/n-r-w/numfmt/internal/slowpath"
)

// ParseFloat parses the longest float literal at the start of data under
// opt's grammar, returning the correctly-rounded float64, the number of
// bytes consumed, and an error if data does not begin with a valid
// literal. Overflow is not an error: out-of-range magnitudes saturate to
// +/-Inf, matching parse_float's contract for floats (unlike ParseInt,
// where overflow is reported).
func ParseFloat(data []byte, opt Options) (float64, int, error) {
	res, scanErr := numlit.Scan(data, opt.radix, opt.decimalPoint, opt.exponentSymbol, opt.nanLiteral, opt.infLiteral, opt.strictLeadingZeros)
	if scanErr != nil {
		return 0, scanErr.Offset, &ParseError{Kind: mapScanKind(scanErr.Kind), Offset: scanErr.Offset}
	}

	switch res.Special {
	case numlit.SpecialNaN:
		return math.NaN(), res.Consumed, nil
	case numlit.SpecialInf:
		if res.Negative {
			return math.Inf(-1), res.Consumed, nil
		}
		return math.Inf(1), res.Consumed, nil
	}

	num := res.Number

	if !num.ManyDigits && opt.radix == 10 {
		if f, ok := fastpath.TryDisguised64(num.Mantissa, num.Exponent, res.Negative); ok {
			return f, res.Consumed, nil
		}
		if f, ok := eiselLemire.Compute64(num.Mantissa, num.Exponent, res.Negative); ok {
			return f, res.Consumed, nil
		}
	}

	resolved := slowpath.Resolve(num, opt.radix, 52)
	return extfloat.RoundToFloat64(resolved, res.Negative), res.Consumed, nil
}

// ParseFloat32 is the float32 analogue of ParseFloat.
func ParseFloat32(data []byte, opt Options) (float32, int, error) {
	res, scanErr := numlit.Scan(data, opt.radix, opt.decimalPoint, opt.exponentSymbol, opt.nanLiteral, opt.infLiteral, opt.strictLeadingZeros)
	if scanErr != nil {
		return 0, scanErr.Offset, &ParseError{Kind: mapScanKind(scanErr.Kind), Offset: scanErr.Offset}
	}

	switch res.Special {
	case numlit.SpecialNaN:
		return float32(math.NaN()), res.Consumed, nil
	case numlit.SpecialInf:
		if res.Negative {
			return float32(math.Inf(-1)), res.Consumed, nil
		}
		return float32(math.Inf(1)), res.Consumed, nil
	}

	num := res.Number

	if !num.ManyDigits && opt.radix == 10 {
		if f, ok := fastpath.TryDisguised32(num.Mantissa, num.Exponent, res.Negative); ok {
			return f, res.Consumed, nil
		}
		if f, ok := eiselLemire.Compute32(num.Mantissa, num.Exponent, res.Negative); ok {
			return f, res.Consumed, nil
		}
	}

	resolved := slowpath.Resolve(num, opt.radix, 23)
	return extfloat.RoundToFloat32(resolved, res.Negative), res.Consumed, nil
}

func mapScanKind(k numlit.ErrKind) ErrorKind {
	switch k {
	case numlit.ErrEmpty:
		return KindEmpty
	case numlit.ErrEmptyMantissa:
		return KindEmptyMantissa
	case numlit.ErrEmptyExponent:
		return KindEmptyExponent
	case numlit.ErrEmptyInteger:
		return KindEmptyInteger
	case numlit.ErrEmptyFraction:
		return KindEmptyFraction
	case numlit.ErrInvalidLeadingZeros:
		return KindInvalidLeadingZeros
	default:
		return KindInvalidDigit
	}
}

// ParseInt parses the longest run of an optional sign followed by digits
// in opt.radix from the start of data into T, returning the value, bytes
// consumed, and an error if no digit was found or the magnitude does not
// fit T.
func ParseInt[T intconv.Integer](data []byte, opt Options) (T, int, error) {
	var zero T
	if len(data) == 0 {
		return zero, 0, ErrEmpty
	}

	i := 0
	negative := false
	if data[0] == '+' || data[0] == '-' {
		negative = data[0] == '-'
		i++
	}

	digitsStart := i
	for i < len(data) && limb.IsDigit(data[i], opt.radix) {
		i++
	}
	if i == digitsStart {
		return zero, i, &ParseError{Kind: KindEmpty, Offset: digitsStart}
	}

	v, err := intconv.ParseInt[T](data[:i], opt.radix)
	if err != nil {
		if err == intconv.ErrRange {
			kind := KindOverflow
			if negative {
				kind = KindUnderflow
			}
			return zero, i, &ParseError{Kind: kind, Offset: 0}
		}
		return zero, i, &ParseError{Kind: KindInvalidDigit, Offset: digitsStart}
	}
	return v, i, nil
}

// WriteInt writes v in opt.radix into buf, returning the number of bytes
// written. buf must be at least IntBufferSize[T](opt) bytes.
func WriteInt[T intconv.Integer](v T, buf []byte, opt Options) int {
	mustFit(buf, intconv.BufferSize[T](opt.radix))
	return intconv.WriteInt(buf, v, opt.radix)
}

// IntBufferSize returns the minimum buf length WriteInt[T] needs for
// opt.radix.
func IntBufferSize[T intconv.Integer](opt Options) int {
	return intconv.BufferSize[T](opt.radix)
}
