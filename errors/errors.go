package errors

// Error extends the standard error interface with the structured information
// reported by the jsend codec.
type Error interface {
	error

	// Code returns the code identifying the failure.
	Code() ErrorCode

	// Classification reports whether the failure was anticipated (fail) or
	// unanticipated (error).
	Classification() ErrorClassification

	// Message returns the human-readable message without the cause.
	Message() string

	// Field returns the wire field the failure relates to, or "" when the
	// failure concerns the document as a whole.
	Field() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
