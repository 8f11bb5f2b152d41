package jsend

import (
	"fmt"
)

// Status is the discriminator naming an envelope's variant.
type Status string

const (
	// StatusSuccess marks an operation that produced a value.
	StatusSuccess Status = "success"

	// StatusFail marks an anticipated, recoverable failure.
	StatusFail Status = "fail"

	// StatusError marks an unanticipated failure.
	StatusError Status = "error"
)

// Wire field names.
const (
	fieldStatus  = "status"
	fieldData    = "data"
	fieldMessage = "message"
	fieldCode    = "code"
)

// Envelope is the outcome of an operation: exactly one of success, fail or
// error.
//
// The type parameters are the success payload D, the fail message and data
// types FM and FD, and the error message and data types EM and ED. Message
// types are rendered as text when encoded; see the package documentation for
// the types accepted.
//
// Envelopes are immutable values. Construct them with the package functions
// (Success, NewFail, NewError, FromErrorFields, FromError, ...) or by
// decoding. The zero value has no status and fails to encode.
type Envelope[D, FM, FD, EM, ED any] struct {
	status Status
	data   D
	fail   ErrorFields[FM, FD]
	err    ErrorFields[EM, ED]
}

// JSend is an envelope whose fail and error messages are strings.
type JSend[D, FD, ED any] = Envelope[D, string, FD, string, ED]

// Success returns a success envelope with string messages.
//
// Example:
//
//	env := jsend.Success[any, any](42)
func Success[FD, ED, D any](data D) JSend[D, FD, ED] {
	return SuccessOf[D, string, FD, string, ED](data)
}

// NewFail returns a fail envelope with the given message and no code or data.
//
// Example:
//
//	env := jsend.NewFail[User, Validation, any]("bad input")
func NewFail[D, FD, ED any](message string) JSend[D, FD, ED] {
	return NewFailOf[D, string, FD, string, ED](message)
}

// NewError returns an error envelope with the given message and no code or
// data.
//
// Example:
//
//	env := jsend.NewError[User, any, any]("disk full")
func NewError[D, FD, ED any](message string) JSend[D, FD, ED] {
	return NewErrorOf[D, string, FD, string, ED](message)
}

// SuccessOf returns a success envelope for any message types.
func SuccessOf[D, FM, FD, EM, ED any](data D) Envelope[D, FM, FD, EM, ED] {
	return Envelope[D, FM, FD, EM, ED]{status: StatusSuccess, data: data}
}

// NewFailOf returns a fail envelope for any message types.
func NewFailOf[D, FM, FD, EM, ED any](message FM) Envelope[D, FM, FD, EM, ED] {
	return Envelope[D, FM, FD, EM, ED]{
		status: StatusFail,
		fail:   ErrorFields[FM, FD]{Message: message},
	}
}

// NewErrorOf returns an error envelope for any message types.
func NewErrorOf[D, FM, FD, EM, ED any](message EM) Envelope[D, FM, FD, EM, ED] {
	return Envelope[D, FM, FD, EM, ED]{
		status: StatusError,
		err:    ErrorFields[EM, ED]{Message: message},
	}
}

// FailWithData returns a fail envelope carrying only a payload, the shape
// used with FailPayload.
func FailWithData[D, FM, EM, ED, FD any](data FD) Envelope[D, FM, FD, EM, ED] {
	return Envelope[D, FM, FD, EM, ED]{
		status: StatusFail,
		fail:   ErrorFields[FM, FD]{Data: &data},
	}
}

// FromErrorFields converts fields into an error envelope. The success and
// fail type parameters must be given; the rest are inferred.
//
// Example:
//
//	env := jsend.FromErrorFields[User, string, any](jsend.ErrorFields[string, any]{
//	    Message: "disk full",
//	    Code:    jsend.Ptr(jsend.NewCode(507)),
//	})
func FromErrorFields[D, FM, FD, EM, ED any](fields ErrorFields[EM, ED]) Envelope[D, FM, FD, EM, ED] {
	return Envelope[D, FM, FD, EM, ED]{status: StatusError, err: fields}
}

// FromFailFields converts fields into a fail envelope. The success and error
// type parameters must be given; the rest are inferred.
func FromFailFields[D, EM, ED, FM, FD any](fields ErrorFields[FM, FD]) Envelope[D, FM, FD, EM, ED] {
	return Envelope[D, FM, FD, EM, ED]{status: StatusFail, fail: fields}
}

// WithCode returns a copy of a fail or error envelope with its code set.
// Success envelopes are returned unchanged.
func (e Envelope[D, FM, FD, EM, ED]) WithCode(code Code) Envelope[D, FM, FD, EM, ED] {
	switch e.status {
	case StatusFail:
		e.fail.Code = &code
	case StatusError:
		e.err.Code = &code
	}
	return e
}

// Status returns the envelope's variant, or "" for the zero value.
func (e Envelope[D, FM, FD, EM, ED]) Status() Status {
	return e.status
}

// String renders the envelope briefly, for logs.
func (e Envelope[D, FM, FD, EM, ED]) String() string {
	switch e.status {
	case StatusSuccess:
		return fmt.Sprintf("success(%v)", e.data)
	case StatusFail:
		return "fail(" + e.fail.summary() + ")"
	case StatusError:
		return "error(" + e.err.summary() + ")"
	}
	return "<invalid envelope>"
}
