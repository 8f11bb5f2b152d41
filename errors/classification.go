package errors

// ErrorClassification mirrors the envelope's fail/error distinction for
// failures raised by the codec itself.
type ErrorClassification string

const (
	// ClassificationFail marks anticipated failures caused by the input,
	// such as a document missing a required field.
	ClassificationFail ErrorClassification = "FAIL"

	// ClassificationError marks unanticipated failures, such as a writer
	// that stopped accepting output.
	ClassificationError ErrorClassification = "ERROR"
)

// IsFail returns true if the classification marks an anticipated failure.
func (c ErrorClassification) IsFail() bool {
	return c == ClassificationFail
}

// defaultClassifications maps codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeMalformed:     ClassificationFail,
	CodeMissingStatus: ClassificationFail,
	CodeInvalidStatus: ClassificationFail,
	CodeMissingField:  ClassificationFail,
	CodeInvalidField:  ClassificationFail,
	CodeUnknownField:  ClassificationFail,
	CodeSchemaFailed:  ClassificationFail,
	CodeInvalidConfig: ClassificationFail,

	CodeEncodeFailed:    ClassificationError,
	CodeFieldCount:      ClassificationError,
	CodeInvalidEnvelope: ClassificationError,
	CodeInternal:        ClassificationError,
	CodeUnknown:         ClassificationError,
}

// getDefaultClassification returns the default classification for a code.
// Unmapped codes are treated as unanticipated.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationError
}
