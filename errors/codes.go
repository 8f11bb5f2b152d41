package errors

// ErrorCode identifies a specific failure.
// Codes are strings so they read well in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// Decode errors.

	// CodeMalformed indicates the document could not be read as an object.
	CodeMalformed ErrorCode = "MALFORMED_DOCUMENT"

	// CodeMissingStatus indicates the "status" discriminator is absent.
	CodeMissingStatus ErrorCode = "MISSING_STATUS"

	// CodeInvalidStatus indicates the discriminator is not text or does not
	// name a known variant.
	CodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// CodeMissingField indicates a field required by the variant is absent.
	CodeMissingField ErrorCode = "MISSING_FIELD"

	// CodeInvalidField indicates a field is present but has the wrong shape.
	CodeInvalidField ErrorCode = "INVALID_FIELD"

	// CodeUnknownField indicates strict decoding found a field outside the
	// variant's field set.
	CodeUnknownField ErrorCode = "UNKNOWN_FIELD"

	// Encode errors.

	// CodeEncodeFailed indicates the structural writer failed.
	CodeEncodeFailed ErrorCode = "ENCODE_FAILED"

	// CodeFieldCount indicates an object was closed with a different number
	// of fields than it declared.
	CodeFieldCount ErrorCode = "FIELD_COUNT_MISMATCH"

	// CodeInvalidEnvelope indicates an envelope without a status was encoded.
	CodeInvalidEnvelope ErrorCode = "INVALID_ENVELOPE"

	// Configuration and schema errors.

	// CodeInvalidConfig indicates a codec option holds an unknown value.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeSchemaFailed indicates a document failed schema validation.
	CodeSchemaFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
