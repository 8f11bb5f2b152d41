package errors

import "fmt"

// codecError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type codecError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	field          string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message", "[CODE] message (field f)" and ": cause" appended
// when a cause is present.
func (e *codecError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.code, e.message)
	if e.field != "" {
		s += fmt.Sprintf(" (field %q)", e.field)
	}
	if e.cause != nil {
		s += fmt.Sprintf(": %v", e.cause)
	}
	return s
}

func (e *codecError) Code() ErrorCode {
	return e.code
}

func (e *codecError) Classification() ErrorClassification {
	return e.classification
}

func (e *codecError) Message() string {
	return e.message
}

func (e *codecError) Field() string {
	return e.field
}

// Context returns a copy of the context map, or nil.
func (e *codecError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

func (e *codecError) Unwrap() error {
	return e.cause
}

// clone returns a shallow copy whose context map may be replaced freely.
func (e *codecError) clone() *codecError {
	c := *e
	c.context = e.Context()
	return &c
}
