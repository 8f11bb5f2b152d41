// Package errors provides the structured error values returned by the jsend
// codec.
//
// Every failure produced while encoding or decoding an envelope is an Error:
// it carries a Code naming the failure, a Classification mirroring the
// envelope's own fail/error split, the wire field involved (if any), optional
// context metadata, and the underlying cause. Errors remain compatible with
// the standard library (errors.Is, errors.As, errors.Unwrap).
//
// # Codes
//
// Decode failures:
//
//   - CodeMalformed: the document is not an object
//   - CodeMissingStatus: the "status" discriminator is absent
//   - CodeInvalidStatus: the discriminator is not text or names no variant
//   - CodeMissingField: a field required by the variant is absent
//   - CodeInvalidField: a field is present but has the wrong shape
//   - CodeUnknownField: strict mode rejected an unrecognised field
//
// Encode and configuration failures:
//
//   - CodeEncodeFailed: the structural writer failed
//   - CodeFieldCount: the declared field count did not match the written one
//   - CodeInvalidConfig: a codec option holds an unknown value
//   - CodeSchemaFailed: a document failed CUE schema validation
//
// # Classification
//
// ClassificationFail marks anticipated failures caused by the input (every
// decode error). ClassificationError marks unanticipated failures (writer
// errors, internal bookkeeping errors). Hosts use the classification to pick
// the envelope variant when reporting an error back to their own callers:
//
//	if errors.IsFail(err) {
//	    // respond with {"status":"fail", ...}
//	}
//
// # JSON
//
// ToJSON renders any error as an ErrorResponse without its cause chain, so it
// can be embedded as the data payload of an envelope without leaking internals:
//
//	resp := errors.ToJSON(err)
//	// {"code":"MISSING_FIELD","message":"missing required field","classification":"FAIL","field":"message"}
package errors
