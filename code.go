package jsend

import (
	"strconv"

	"github.com/jmgilman/go/jsend/codec"
	"github.com/jmgilman/go/jsend/errors"
)

// Code is the optional numeric code carried by fail and error envelopes.
// It holds a validated JSON number literal, so codes of any precision
// survive a round trip. The zero value is the code 0.
type Code struct {
	n codec.Number
}

// NewCode returns the code for an integer.
func NewCode(i int64) Code {
	return Code{n: codec.Number(strconv.FormatInt(i, 10))}
}

// ParseCode parses a JSON number literal such as "400" or
// "123456789012345678901234567890".
func ParseCode(s string) (Code, error) {
	n, err := codec.ParseNumber(s)
	if err != nil {
		return Code{}, err
	}
	return Code{n: n}, nil
}

// Int64 returns the code as an int64 if it is an integer in range.
func (c Code) Int64() (int64, bool) {
	i, err := c.Number().Int64()
	return i, err == nil
}

// Number returns the code's literal.
func (c Code) Number() codec.Number {
	if c.n == "" {
		return "0"
	}
	return c.n
}

func (c Code) String() string {
	return string(c.Number())
}

// GoString renders the code as its bare literal in debug output.
func (c Code) GoString() string {
	return c.String()
}

// Ptr returns a pointer to v. It is a convenience for filling optional
// fields such as ErrorFields.Code.
func Ptr[T any](v T) *T {
	return &v
}

// wireCode checks a code against the configured mode before encoding.
func wireCode(c Code, mode CodeMode) (codec.Number, error) {
	n := c.Number()
	if mode == CodeInt64 {
		if _, err := n.Int64(); err != nil {
			return "", errors.WrapField(err, errors.CodeEncodeFailed, fieldCode, "code does not fit the int64 code mode")
		}
	}
	return n, nil
}

// readCode decodes the code field according to the configured mode.
func readCode(r codec.ObjectReader, mode CodeMode) (Code, error) {
	n, err := r.Number(fieldCode)
	if err != nil {
		return Code{}, err
	}
	if mode == CodeInt64 {
		i, err := n.Int64()
		if err != nil {
			return Code{}, errors.WrapField(err, errors.CodeInvalidField, fieldCode, "code is not a 64-bit integer")
		}
		return NewCode(i), nil
	}
	return Code{n: n}, nil
}
