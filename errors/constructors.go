package errors

import "fmt"

// New creates an Error with the given code and message.
// The classification is derived from the code.
//
// Example:
//
//	err := errors.New(errors.CodeMissingStatus, "missing status discriminator")
func New(code ErrorCode, message string) Error {
	return &codecError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates an Error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// NewField creates an Error that relates to a single wire field.
//
// Example:
//
//	err := errors.NewField(errors.CodeMissingField, "message", "missing required field")
func NewField(code ErrorCode, field, message string) Error {
	return &codecError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		field:          field,
	}
}
