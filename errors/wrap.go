package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message while preserving it as the cause.
// If err already is an Error, its classification and field are preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := w.Field("data", v); err != nil {
//	    return errors.Wrap(err, errors.CodeEncodeFailed, "failed to write data")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	wrapped := &codecError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		cause:          err,
	}

	var inner Error
	if errors.As(err, &inner) {
		wrapped.classification = inner.Classification()
		wrapped.field = inner.Field()
	}
	return wrapped
}

// Wrapf wraps err with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapField wraps err as a failure of a single wire field.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := r.Decode("data", &data); err != nil {
//	    return errors.WrapField(err, errors.CodeInvalidField, "data", "failed to decode data")
//	}
func WrapField(err error, code ErrorCode, field, message string) Error {
	if err == nil {
		return nil
	}
	return &codecError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		field:          field,
		cause:          err,
	}
}
