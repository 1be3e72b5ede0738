package numfmt

// Options is immutable once built: every field consumed by the parser and
// writer components is validated exactly once, at OptionsBuilder.Build, so
// that Options values obtained from the builder or the named presets below
// are always valid. The fields are unexported, so the only other value a
// caller can construct is the zero Options, which has radix 0 and has not
// been validated.
type Options struct {
	radix                 int
	decimalPoint          byte
	exponentSymbol        byte
	nanLiteral            []byte
	infLiteral            []byte
	lossy                 bool
	roundMode             RoundMode
	trimTrailingZero      bool
	strictLeadingZeros    bool
	minSignificantDigits  int
	maxSignificantDigits  int
	positiveExponentBreak int32
	negativeExponentBreak int32
}

// RoundMode selects how the writer rounds a value that does not terminate
// at the requested significant-digit count.
type RoundMode int

const (
	RoundNearestEven RoundMode = iota
	RoundTruncate
)

const (
	maxLiteralLen = 50

	defaultPositiveExponentBreak = 9
	defaultNegativeExponentBreak = -5
)

// OptionsBuilder accumulates option values before a single validating
// Build call freezes them into an Options. NewOptionsBuilder seeds every
// default; the zero OptionsBuilder carries none (its radix is 0), so Build
// on it returns ErrBadOptions.
type OptionsBuilder struct {
	opt Options
	set bool
}

// NewOptionsBuilder returns a builder seeded with the default grammar:
// radix 10, '.' and 'e' separators, "NaN"/"Inf" literals, nearest-even
// rounding, and the spec's default exponent breaks (+9 / -5).
func NewOptionsBuilder() *OptionsBuilder {
	b := &OptionsBuilder{}
	b.opt = Options{
		radix:                 10,
		decimalPoint:          '.',
		exponentSymbol:        'e',
		nanLiteral:            []byte("NaN"),
		infLiteral:            []byte("Inf"),
		roundMode:             RoundNearestEven,
		positiveExponentBreak: defaultPositiveExponentBreak,
		negativeExponentBreak: defaultNegativeExponentBreak,
	}
	return b
}

func (b *OptionsBuilder) Radix(radix int) *OptionsBuilder {
	b.opt.radix = radix
	return b
}

func (b *OptionsBuilder) DecimalPoint(c byte) *OptionsBuilder {
	b.opt.decimalPoint = c
	return b
}

func (b *OptionsBuilder) ExponentSymbol(c byte) *OptionsBuilder {
	b.opt.exponentSymbol = c
	return b
}

func (b *OptionsBuilder) NaNLiteral(lit []byte) *OptionsBuilder {
	b.opt.nanLiteral = lit
	return b
}

func (b *OptionsBuilder) InfLiteral(lit []byte) *OptionsBuilder {
	b.opt.infLiteral = lit
	return b
}

func (b *OptionsBuilder) Lossy(lossy bool) *OptionsBuilder {
	b.opt.lossy = lossy
	return b
}

func (b *OptionsBuilder) RoundMode(m RoundMode) *OptionsBuilder {
	b.opt.roundMode = m
	return b
}

func (b *OptionsBuilder) TrimTrailingZero(trim bool) *OptionsBuilder {
	b.opt.trimTrailingZero = trim
	return b
}

func (b *OptionsBuilder) StrictLeadingZeros(strict bool) *OptionsBuilder {
	b.opt.strictLeadingZeros = strict
	return b
}

func (b *OptionsBuilder) MinSignificantDigits(n int) *OptionsBuilder {
	b.opt.minSignificantDigits = n
	return b
}

func (b *OptionsBuilder) MaxSignificantDigits(n int) *OptionsBuilder {
	b.opt.maxSignificantDigits = n
	return b
}

func (b *OptionsBuilder) PositiveExponentBreak(n int32) *OptionsBuilder {
	b.opt.positiveExponentBreak = n
	return b
}

func (b *OptionsBuilder) NegativeExponentBreak(n int32) *OptionsBuilder {
	b.opt.negativeExponentBreak = n
	return b
}

// Build validates every field and returns a frozen Options, or
// ErrBadOptions describing the first violation found.
func (b *OptionsBuilder) Build() (Options, error) {
	o := b.opt

	if o.radix < 2 || o.radix > 36 {
		return Options{}, ErrBadOptions
	}
	if !isASCII(o.decimalPoint) || !isASCII(o.exponentSymbol) {
		return Options{}, ErrBadOptions
	}
	if o.decimalPoint == o.exponentSymbol {
		return Options{}, ErrBadOptions
	}
	if isDigitIn(o.decimalPoint, o.radix) || isDigitIn(o.exponentSymbol, o.radix) {
		return Options{}, ErrBadOptions
	}
	if err := validateLiteral(o.nanLiteral, o.radix); err != nil {
		return Options{}, err
	}
	if err := validateLiteral(o.infLiteral, o.radix); err != nil {
		return Options{}, err
	}
	if len(o.nanLiteral) > 0 && len(o.infLiteral) > 0 && isPrefixFold(o.nanLiteral, o.infLiteral) {
		return Options{}, ErrBadOptions
	}
	if len(o.nanLiteral) > 0 && len(o.infLiteral) > 0 && isPrefixFold(o.infLiteral, o.nanLiteral) {
		return Options{}, ErrBadOptions
	}
	if o.negativeExponentBreak > 0 || o.positiveExponentBreak < 0 {
		return Options{}, ErrBadOptions
	}
	if o.minSignificantDigits < 0 || o.maxSignificantDigits < 0 {
		return Options{}, ErrBadOptions
	}
	if o.maxSignificantDigits > 0 && o.minSignificantDigits > o.maxSignificantDigits {
		return Options{}, ErrBadOptions
	}

	return o, nil
}

func isASCII(c byte) bool {
	return c < 0x80
}

func isDigitIn(c byte, radix int) bool {
	for v := 0; v < radix; v++ {
		if v < 10 {
			if c == byte('0'+v) {
				return true
			}
		} else {
			lower := byte('a' + v - 10)
			upper := byte('A' + v - 10)
			if c == lower || c == upper {
				return true
			}
		}
	}
	return false
}

func validateLiteral(lit []byte, radix int) error {
	if len(lit) == 0 {
		return nil
	}
	if len(lit) > maxLiteralLen {
		return ErrBadOptions
	}
	for _, c := range lit {
		if !isASCII(c) {
			return ErrBadOptions
		}
		if isDigitIn(c, radix) {
			return ErrBadOptions
		}
	}
	return nil
}

func isPrefixFold(prefix, s []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		a, b := prefix[i], s[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// Standard returns the default textual grammar: radix 10, '.'/'e'
// separators, "NaN"/"Inf" literals.
func Standard() Options {
	opt, err := NewOptionsBuilder().Build()
	if err != nil {
		panic(err)
	}
	return opt
}

// JSON returns the grammar JSON's number production accepts: no leading
// zeros in the integer part (beyond a single "0"), and no NaN/Inf literal
// (JSON has none, so both are disabled).
func JSON() Options {
	opt, err := NewOptionsBuilder().
		StrictLeadingZeros(true).
		NaNLiteral(nil).
		InfLiteral(nil).
		Build()
	if err != nil {
		panic(err)
	}
	return opt
}

// Go returns the grammar Go's own float literal syntax accepts for the
// portion this package covers (decimal mantissa/exponent; Go's additional
// "0x1.8p3" hex-float form is out of scope, see the package doc).
func Go() Options {
	opt, err := NewOptionsBuilder().
		TrimTrailingZero(false).
		Build()
	if err != nil {
		panic(err)
	}
	return opt
}
