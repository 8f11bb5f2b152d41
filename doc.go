// Package jsend models the outcome of an operation as a JSend-style response
// envelope and encodes it to, and decodes it from, self-describing documents.
//
// # Overview
//
// An Envelope is exactly one of three variants:
//
//   - success: the operation produced a value (data)
//   - fail: an anticipated, recoverable failure (message, optional code and data)
//   - error: an unanticipated failure (message, optional code and data)
//
// On the wire the variant is named by the "status" field:
//
//	{"status":"success","data":42}
//	{"status":"fail","message":"bad input"}
//	{"status":"fail","message":"bad input","code":400,"data":{"field":"x"}}
//	{"status":"error","message":"disk full"}
//
// Optional fields that are absent are omitted from the document; they are
// never written as null.
//
// # Type Parameters
//
// Envelope[D, FM, FD, EM, ED] is parameterised over the success payload D,
// the fail message and data types FM and FD, and the error message and data
// types EM and ED. JSend[D, FD, ED] fixes both message types to string, which
// is what most callers want.
//
// Message types are checked where they are used rather than on the type:
// encoding accepts strings, string-kinded types, encoding.TextMarshaler,
// fmt.Stringer and error; decoding accepts string-kinded types and types
// whose pointer implements encoding.TextUnmarshaler.
//
// # Constructing Envelopes
//
//	ok := jsend.Success[any, any](42)
//	bad := jsend.NewFail[int, any, any]("bad input").WithCode(jsend.NewCode(400))
//	boom := jsend.FromError[int, string, any](err)
//
// ErrorFields doubles as a builder:
//
//	env := jsend.FromErrorFields[int, string, any](jsend.ErrorFields[string, any]{
//	    Message: "disk full",
//	    Code:    jsend.Ptr(jsend.NewCode(507)),
//	})
//
// # Encoding and Decoding
//
// JSON, YAML and CBOR are supported directly:
//
//	data, err := jsend.EncodeJSON(env)
//
//	var decoded jsend.JSend[int, any, any]
//	err = jsend.DecodeJSON(data, &decoded, jsend.WithStrict())
//
// Envelope also implements the json, yaml.v3 and cbor marshaler interfaces
// using DefaultConfig, so it can be embedded in larger documents. Other
// formats plug in through codec.ObjectWriter and codec.ObjectReader with
// Encode and Decode.
//
// Decoding looks up "status" first and then reads the fields of that
// variant. Unknown fields are ignored unless WithStrict is given. Every
// decode failure is an errors.Error carrying a code such as
// errors.CodeMissingField and the offending field name.
//
// # Configuration
//
// Config selects:
//
//   - Strict: reject fields outside the variant's field set
//   - FailShape: FailMessage (message, code, data) or FailPayload (data only)
//   - CodeMode: CodeNumber (any JSON number) or CodeInt64
//
// The fail shape and code mode change the wire format, so producers and
// consumers must agree on them.
//
// # Accessors
//
// IsSuccess, IsFail and IsError test the variant. SuccessValue, FailValue
// and ErrorValue extract the payload with a boolean. Unwrap, UnwrapFail and
// UnwrapError extract it and panic on the wrong variant, with a message
// that includes the payload actually found; Expect and friends do the same
// with a caller-chosen message. UnwrapOr, UnwrapOrElse and UnwrapOrDefault
// substitute a value for any non-success variant.
package jsend
