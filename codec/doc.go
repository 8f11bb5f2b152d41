// Package codec defines the structural object writer and reader used by the
// jsend envelope codec, and provides JSON, YAML and CBOR implementations.
//
// # Writers
//
// An ObjectWriter emits exactly one object. The caller declares the number of
// fields up front with Begin, writes them with Field, and closes the object
// with End:
//
//	w := codec.NewJSONWriter(&buf)
//	_ = w.Begin(2)
//	_ = w.Field("status", "fail")
//	_ = w.Field("message", "bad input")
//	_ = w.End()
//
// Some formats need the count before any field is written (the CBOR writer
// emits a definite-length map header from it). Every writer enforces the
// declaration: writing more fields than declared, or closing the object with
// fewer, fails with errors.CodeFieldCount.
//
// Field values are either text (string), a Number, or an arbitrary payload
// that the writer serializes with its format's native marshaler.
//
// # Readers
//
// An ObjectReader exposes the fields of one decoded object by key. Field
// order in the source document is irrelevant. Text and Number enforce the
// field's shape; Decode hands the raw field to the format's unmarshaler.
//
// # Numbers
//
// Number holds a numeric literal in JSON number syntax so that values of any
// precision survive a round trip through every format. JSON and YAML keep the
// literal as written. CBOR writes integers as integers or bignums, and a
// fraction as a float when the float prints back as the same literal;
// anything else becomes a decimal fraction (tag 4), which reads back as
// digits with a decimal point for negative exponents ("400.0") or in
// exponent notation for positive ones ("1e2"). A literal such as "1.5e3"
// therefore comes back from CBOR as the equal value "15e2".
package codec

import (
	"github.com/jmgilman/go/jsend/errors"
)

// ObjectWriter writes a single structured object.
type ObjectWriter interface {
	// Begin starts the object and declares how many fields will follow.
	Begin(fields int) error

	// Field writes one key/value pair. value is a string, a Number, or a
	// payload serialized with the format's marshaler.
	Field(key string, value any) error

	// End closes the object. It fails if the number of fields written
	// differs from the number declared.
	End() error
}

// ObjectReader reads the fields of a single structured object.
type ObjectReader interface {
	// Keys returns the field names present in the object.
	Keys() []string

	// Has reports whether the field is present (including explicit nulls).
	Has(key string) bool

	// IsNull reports whether the field is present with a null value.
	IsNull(key string) bool

	// Text returns the field as text. It fails if the field is absent or
	// is not a text value.
	Text(key string) (string, error)

	// Number returns the field as a numeric literal. It fails if the field
	// is absent or is not a number.
	Number(key string) (Number, error)

	// Decode unmarshals the field into target.
	Decode(key string, target any) error
}

// fieldCounter tracks declared versus written fields for a writer.
type fieldCounter struct {
	begun    bool
	declared int
	written  int
}

func (c *fieldCounter) begin(fields int) error {
	if c.begun {
		return errors.New(errors.CodeInternal, "object already begun")
	}
	if fields < 0 {
		return errors.Newf(errors.CodeFieldCount, "negative field count %d", fields)
	}
	c.begun = true
	c.declared = fields
	return nil
}

// next reserves a slot for one more field.
func (c *fieldCounter) next(key string) error {
	if !c.begun {
		return errors.New(errors.CodeInternal, "field written before object begun")
	}
	if c.written >= c.declared {
		return errors.WithContextMap(
			errors.NewField(errors.CodeFieldCount, key, "more fields written than declared"),
			map[string]interface{}{"declared": c.declared},
		)
	}
	c.written++
	return nil
}

func (c *fieldCounter) end() error {
	if !c.begun {
		return errors.New(errors.CodeInternal, "object ended before it was begun")
	}
	if c.written != c.declared {
		return errors.WithContextMap(
			errors.New(errors.CodeFieldCount, "fewer fields written than declared"),
			map[string]interface{}{"declared": c.declared, "written": c.written},
		)
	}
	return nil
}

func missingField(key string) error {
	return errors.NewField(errors.CodeMissingField, key, "missing required field")
}
