package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or carries no code.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeMissingField {
//	    // report the field back to the client
//	}
func GetCode(err error) ErrorCode {
	var e Error
	if err != nil && stderrors.As(err, &e) {
		return e.Code()
	}
	return CodeUnknown
}

// GetField extracts the wire field from an error, or "".
func GetField(err error) string {
	var e Error
	if err != nil && stderrors.As(err, &e) {
		return e.Field()
	}
	return ""
}

// GetClassification extracts the classification from an error.
// Errors that carry no classification are treated as unanticipated.
func GetClassification(err error) ErrorClassification {
	var e Error
	if err != nil && stderrors.As(err, &e) {
		return e.Classification()
	}
	return ClassificationError
}

// IsFail returns true if err is classified as an anticipated failure.
// Returns false for nil and for errors that carry no classification.
func IsFail(err error) bool {
	return GetClassification(err).IsFail()
}
