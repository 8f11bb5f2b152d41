package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat, serializable form of an error.
// The cause chain is excluded so internal details do not leak to clients.
type ErrorResponse struct {
	// Code is the error code.
	Code string `json:"code" yaml:"code" cbor:"code"`

	// Message is the human-readable message.
	Message string `json:"message" yaml:"message" cbor:"message"`

	// Classification is "FAIL" or "ERROR".
	Classification string `json:"classification" yaml:"classification" cbor:"classification"`

	// Field is the wire field the error relates to. Omitted if empty.
	Field string `json:"field,omitempty" yaml:"field,omitempty" cbor:"field,omitempty"`

	// Context contains optional metadata. Omitted if empty.
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty" cbor:"context,omitempty"`
}

// Error implements error so an ErrorResponse can be carried as the data
// payload of an envelope built with jsend.FromError.
func (r *ErrorResponse) Error() string {
	return "[" + r.Code + "] " + r.Message
}

// ToJSON converts any error to an ErrorResponse.
// Returns nil if err is nil.
//
// Errors without structure are reported with CodeUnknown, ClassificationError
// and their Error() text as the message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	var e Error
	if As(err, &e) {
		resp.Message = e.Message()
		resp.Field = e.Field()
		resp.Context = e.Context()
	}
	return resp
}

// MarshalJSON implements json.Marshaler so errors can be passed directly to
// json.Marshal.
func (e *codecError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		return nil, &codecError{
			code:           CodeInternal,
			classification: ClassificationError,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
