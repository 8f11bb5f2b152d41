package jsend

import (
	"fmt"
	"strconv"
)

// ErrorFields is the message, optional code and optional data carried by
// fail and error envelopes. Nil Code and Data mean absent; they are omitted
// from the wire form.
//
// ErrorFields is what FailValue and ErrorValue return, and it converts into
// an envelope with FromFailFields or FromErrorFields without loss.
type ErrorFields[M, D any] struct {
	Message M
	Code    *Code
	Data    *D
}

// GoString renders the fields for panic messages and %#v.
func (f ErrorFields[M, D]) GoString() string {
	code := "nil"
	if f.Code != nil {
		code = f.Code.String()
	}
	data := "nil"
	if f.Data != nil {
		data = fmt.Sprintf("%#v", *f.Data)
	}
	return fmt.Sprintf("ErrorFields{Message: %s, Code: %s, Data: %s}",
		strconv.Quote(messageText(f.Message)), code, data)
}

func (f ErrorFields[M, D]) summary() string {
	s := strconv.Quote(messageText(f.Message))
	if f.Code != nil {
		s += ", code=" + f.Code.String()
	}
	return s
}
