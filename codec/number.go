package codec

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmgilman/go/jsend/errors"
)

// Number is a numeric literal in JSON number syntax.
type Number string

var numberSyntax = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// ParseNumber validates s as a JSON number literal.
func ParseNumber(s string) (Number, error) {
	if !numberSyntax.MatchString(s) {
		return "", errors.Newf(errors.CodeInvalidField, "%q is not a number", s)
	}
	return Number(s), nil
}

// IsInteger reports whether the literal has no fraction or exponent.
func (n Number) IsInteger() bool {
	return !strings.ContainsAny(string(n), ".eE")
}

// Int64 returns the literal as an int64. It fails for non-integers and for
// integers outside the int64 range.
func (n Number) Int64() (int64, error) {
	if !n.IsInteger() {
		return 0, errors.Newf(errors.CodeInvalidField, "%s is not an integer", n)
	}
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeInvalidField, "%s does not fit in 64 bits", n)
	}
	return i, nil
}

// BigInt returns the literal as an arbitrary-precision integer.
func (n Number) BigInt() (*big.Int, bool) {
	if !n.IsInteger() {
		return nil, false
	}
	return new(big.Int).SetString(string(n), 10)
}

// Float64 returns the literal as a float64.
func (n Number) Float64() (float64, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeInvalidField, "%s is not representable as float64", n)
	}
	return f, nil
}

// String returns the literal.
func (n Number) String() string {
	return string(n)
}

// MarshalJSON writes the literal unchanged.
func (n Number) MarshalJSON() ([]byte, error) {
	if !numberSyntax.MatchString(string(n)) {
		return nil, errors.Newf(errors.CodeInvalidField, "%q is not a number", string(n))
	}
	return []byte(n), nil
}

// decimalFraction splits the literal into mantissa and base-10 exponent so
// that its value is mant * 10^exp.
func (n Number) decimalFraction() (int64, *big.Int, error) {
	s := string(n)
	var exp int64
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.ParseInt(s[i+1:], 10, 64)
		if err != nil {
			return 0, nil, errors.Wrapf(err, errors.CodeInvalidField, "%s has an exponent out of range", n)
		}
		exp, s = e, s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac := s[i+1:]
		exp -= int64(len(frac))
		s = s[:i] + frac
	}
	mant, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, nil, errors.Newf(errors.CodeInvalidField, "%q is not a number", string(n))
	}
	return exp, mant, nil
}

// maxPaddedZeros bounds the leading zeros written for a negative exponent
// before switching to exponent notation.
const maxPaddedZeros = 32

// numberFromDecimalFraction renders mant * 10^exp as a literal. Negative
// exponents are written with a decimal point, positive ones in exponent
// notation.
func numberFromDecimalFraction(exp int64, mant *big.Int) Number {
	sign := ""
	if mant.Sign() < 0 {
		sign = "-"
	}
	digits := new(big.Int).Abs(mant).String()

	switch {
	case exp == 0:
		return Number(sign + digits)
	case exp > 0:
		return Number(sign + digits + "e" + strconv.FormatInt(exp, 10))
	}

	scale := -exp
	if pad := scale - int64(len(digits)) + 1; pad > maxPaddedZeros {
		return Number(sign + digits + "e" + strconv.FormatInt(exp, 10))
	} else if pad > 0 {
		digits = strings.Repeat("0", int(pad)) + digits
	}
	point := len(digits) - int(scale)
	return Number(sign + digits[:point] + "." + digits[point:])
}

// numberFromGo renders a decoded Go numeric value as a Number.
func numberFromGo(v any) (Number, bool) {
	switch x := v.(type) {
	case int64:
		return Number(strconv.FormatInt(x, 10)), true
	case uint64:
		return Number(strconv.FormatUint(x, 10)), true
	case int:
		return Number(strconv.Itoa(x)), true
	case big.Int:
		return Number(x.String()), true
	case *big.Int:
		return Number(x.String()), true
	case float32:
		return floatNumber(float64(x), 32)
	case float64:
		return floatNumber(x, 64)
	}
	return "", false
}

// floatNumber rejects NaN and the infinities, which have no JSON literal.
func floatNumber(f float64, bits int) (Number, bool) {
	n := Number(strconv.FormatFloat(f, 'g', -1, bits))
	if !numberSyntax.MatchString(string(n)) {
		return "", false
	}
	return n, true
}
