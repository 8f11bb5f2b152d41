package codec

import (
	"encoding/binary"
	"io"
	"math/big"
	"reflect"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/jmgilman/go/jsend/errors"
)

// cborEncMode encodes field keys and payloads with Core Deterministic
// Encoding (RFC 8949 §4.2). Envelope field order itself is fixed by the
// writer's caller.
var cborEncMode cbor.EncMode

// cborDecMode decodes untyped maps as map[string]any so payloads decoded into
// `any` match what encoding/json and yaml.v3 produce.
var cborDecMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	cborEncMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes v with the package's CBOR encoding mode.
func MarshalCBOR(v any) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

// UnmarshalCBOR decodes data into v with the package's CBOR decoding mode.
func UnmarshalCBOR(data []byte, v any) error {
	return cborDecMode.Unmarshal(data, v)
}

// CBORWriter writes one definite-length CBOR map to an io.Writer.
type CBORWriter struct {
	w       io.Writer
	counter fieldCounter
}

// NewCBORWriter returns a writer that emits a CBOR map to w.
func NewCBORWriter(w io.Writer) *CBORWriter {
	return &CBORWriter{w: w}
}

// Begin writes the map header, which carries the declared field count.
func (c *CBORWriter) Begin(fields int) error {
	if err := c.counter.begin(fields); err != nil {
		return err
	}
	_, err := c.w.Write(cborMapHeader(uint64(fields)))
	return err
}

func (c *CBORWriter) Field(key string, value any) error {
	if err := c.counter.next(key); err != nil {
		return err
	}

	k, err := cborEncMode.Marshal(key)
	if err != nil {
		return errors.WrapField(err, errors.CodeEncodeFailed, key, "failed to encode key")
	}
	v, err := marshalCBORValue(value)
	if err != nil {
		return errors.WrapField(err, errors.CodeEncodeFailed, key, "failed to encode value")
	}

	if _, err := c.w.Write(k); err != nil {
		return err
	}
	_, err = c.w.Write(v)
	return err
}

func (c *CBORWriter) End() error {
	return c.counter.end()
}

// tagDecimalFraction is the CBOR tag for a decimal fraction
// [exponent, mantissa] (RFC 8949 §3.4.4).
const tagDecimalFraction = 4

// marshalCBORValue encodes Numbers as CBOR integers (bignums beyond 64 bits),
// as floats when the float prints back as the same literal, and otherwise as
// decimal fractions.
func marshalCBORValue(value any) ([]byte, error) {
	n, ok := value.(Number)
	if !ok {
		return cborEncMode.Marshal(value)
	}
	if _, err := ParseNumber(string(n)); err != nil {
		return nil, err
	}
	if i, err := n.Int64(); err == nil {
		return cborEncMode.Marshal(i)
	}
	if b, ok := n.BigInt(); ok {
		return cborEncMode.Marshal(b)
	}
	if f, err := n.Float64(); err == nil && strconv.FormatFloat(f, 'g', -1, 64) == string(n) {
		return cborEncMode.Marshal(f)
	}

	exp, mant, err := n.decimalFraction()
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(cbor.Tag{
		Number:  tagDecimalFraction,
		Content: []any{exp, mant},
	})
}

// numberFromCBORTag renders a decoded decimal fraction as a Number.
func numberFromCBORTag(t cbor.Tag) (Number, bool) {
	if t.Number != tagDecimalFraction {
		return "", false
	}
	parts, ok := t.Content.([]any)
	if !ok || len(parts) != 2 {
		return "", false
	}
	exp, ok := cborInteger(parts[0])
	if !ok || !exp.IsInt64() {
		return "", false
	}
	mant, ok := cborInteger(parts[1])
	if !ok {
		return "", false
	}
	return numberFromDecimalFraction(exp.Int64(), mant), true
}

func cborInteger(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case int64:
		return big.NewInt(x), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	case big.Int:
		return &x, true
	case *big.Int:
		return x, true
	}
	return nil, false
}

// ResolveDecimalFractions returns v with every CBOR decimal fraction, at any
// depth of maps and slices, replaced by the equivalent Number. Other values
// are returned unchanged.
func ResolveDecimalFractions(v any) any {
	switch x := v.(type) {
	case cbor.Tag:
		if n, ok := numberFromCBORTag(x); ok {
			return n
		}
		return x
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = ResolveDecimalFractions(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ResolveDecimalFractions(e)
		}
		return out
	}
	return v
}

// cborMapHeader encodes the initial byte(s) of a definite-length map
// (major type 5) holding n pairs.
func cborMapHeader(n uint64) []byte {
	const major = 5 << 5
	switch {
	case n < 24:
		return []byte{major | byte(n)}
	case n <= 0xff:
		return []byte{major | 24, byte(n)}
	case n <= 0xffff:
		b := []byte{major | 25, 0, 0}
		binary.BigEndian.PutUint16(b[1:], uint16(n))
		return b
	case n <= 0xffffffff:
		b := []byte{major | 26, 0, 0, 0, 0}
		binary.BigEndian.PutUint32(b[1:], uint32(n))
		return b
	default:
		b := make([]byte, 9)
		b[0] = major | 27
		binary.BigEndian.PutUint64(b[1:], n)
		return b
	}
}

// CBORReader reads the fields of one CBOR map.
type CBORReader struct {
	fields map[string]cbor.RawMessage
}

// NewCBORReader parses data as a CBOR map with text keys.
// Returns CodeMalformed otherwise.
func NewCBORReader(data []byte) (*CBORReader, error) {
	var fields map[string]cbor.RawMessage
	if err := cborDecMode.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformed, "document is not a CBOR map")
	}
	if fields == nil {
		return nil, errors.New(errors.CodeMalformed, "document is null")
	}
	return &CBORReader{fields: fields}, nil
}

func (c *CBORReader) Keys() []string {
	keys := make([]string, 0, len(c.fields))
	for k := range c.fields {
		keys = append(keys, k)
	}
	return keys
}

func (c *CBORReader) Has(key string) bool {
	_, ok := c.fields[key]
	return ok
}

// IsNull reports CBOR null (0xf6) and undefined (0xf7) as null.
func (c *CBORReader) IsNull(key string) bool {
	raw, ok := c.fields[key]
	return ok && len(raw) == 1 && (raw[0] == 0xf6 || raw[0] == 0xf7)
}

func (c *CBORReader) Text(key string) (string, error) {
	raw, ok := c.fields[key]
	if !ok {
		return "", missingField(key)
	}
	// Major type 3 is a text string.
	if len(raw) == 0 || raw[0]>>5 != 3 {
		return "", errors.NewField(errors.CodeInvalidField, key, "expected text")
	}
	var s string
	if err := cborDecMode.Unmarshal(raw, &s); err != nil {
		return "", errors.WrapField(err, errors.CodeInvalidField, key, "expected text")
	}
	return s, nil
}

func (c *CBORReader) Number(key string) (Number, error) {
	raw, ok := c.fields[key]
	if !ok {
		return "", missingField(key)
	}
	var v any
	if err := cborDecMode.Unmarshal(raw, &v); err != nil {
		return "", errors.WrapField(err, errors.CodeInvalidField, key, "expected a number")
	}
	if t, ok := v.(cbor.Tag); ok {
		if n, ok := numberFromCBORTag(t); ok {
			return n, nil
		}
	}
	if n, ok := numberFromGo(v); ok {
		return n, nil
	}
	return "", errors.NewField(errors.CodeInvalidField, key, "expected a number")
}

func (c *CBORReader) Decode(key string, target any) error {
	raw, ok := c.fields[key]
	if !ok {
		return missingField(key)
	}
	if err := cborDecMode.Unmarshal(raw, target); err != nil {
		return errors.WrapField(err, errors.CodeInvalidField, key, "failed to decode field")
	}
	return nil
}
