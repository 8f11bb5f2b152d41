package jsend

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/jmgilman/go/jsend/errors"
)

// messageText renders a message value as text. Messages may be strings,
// string-kinded types, encoding.TextMarshaler, fmt.Stringer or error; other
// values fall back to fmt.Sprint.
func messageText(m any) string {
	switch v := m.(type) {
	case string:
		return v
	case encoding.TextMarshaler:
		if b, err := v.MarshalText(); err == nil {
			return string(b)
		}
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	if rv := reflect.ValueOf(m); rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(m)
}

// messageFromText builds a message value of type M from text. M must be a
// string-kinded type or implement encoding.TextUnmarshaler through its
// pointer.
func messageFromText[M any](field, text string) (M, error) {
	var m M
	switch p := any(&m).(type) {
	case *string:
		*p = text
		return m, nil
	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText([]byte(text)); err != nil {
			return m, errors.WrapField(err, errors.CodeInvalidField, field, "message rejected by its type")
		}
		return m, nil
	}

	rv := reflect.ValueOf(&m).Elem()
	if rv.Kind() == reflect.String {
		rv.SetString(text)
		return m, nil
	}
	return m, errors.NewField(errors.CodeInvalidField, field,
		fmt.Sprintf("message type %T cannot be built from text", m))
}
