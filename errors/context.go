package errors

import "errors"

// asCodecError returns err as a *codecError, converting foreign errors to
// CodeUnknown errors that wrap the original.
func asCodecError(err error) *codecError {
	var e Error
	if !errors.As(err, &e) {
		return &codecError{
			code:           CodeUnknown,
			classification: ClassificationError,
			message:        err.Error(),
			cause:          err,
		}
	}
	if ce, ok := e.(*codecError); ok {
		return ce.clone()
	}
	return &codecError{
		code:           e.Code(),
		classification: e.Classification(),
		message:        e.Message(),
		field:          e.Field(),
		context:        e.Context(),
		cause:          e.Unwrap(),
	}
}

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "status", "fail")
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	e := asCodecError(err)
	if e.context == nil {
		e.context = make(map[string]interface{}, 1)
	}
	e.context[key] = value
	return e
}

// WithContextMap merges ctx into the error's context.
// New fields override existing ones with the same key.
//
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	e := asCodecError(err)
	if e.context == nil {
		e.context = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		e.context[k] = v
	}
	return e
}

// WithClassification overrides the classification of an error.
//
// Returns nil if err is nil.
//
// Example:
//
//	// A writer failure caused by a closed client connection is expected.
//	err = errors.WithClassification(err, errors.ClassificationFail)
func WithClassification(err error, classification ErrorClassification) Error {
	if err == nil {
		return nil
	}

	e := asCodecError(err)
	e.classification = classification
	return e
}
