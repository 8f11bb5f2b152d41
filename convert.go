package jsend

import (
	"github.com/jmgilman/go/jsend/errors"
)

// FromError converts a native error into an error envelope: the message is
// err.Error(), the data is err itself, and there is no code. The success
// and fail type parameters must be given; the error type is inferred.
//
// Example:
//
//	if err := store.Put(ctx, item); err != nil {
//	    return jsend.FromError[Item, string, any](err)
//	}
func FromError[D, FM, FD any, E error](err E) Envelope[D, FM, FD, string, E] {
	return FromErrorFields[D, FM, FD](ErrorFields[string, E]{
		Message: err.Error(),
		Data:    &err,
	})
}

// FromFail converts a native error into a fail envelope, as FromError does
// for the error variant.
func FromFail[D, EM, ED any, E error](err E) Envelope[D, string, E, EM, ED] {
	return FromFailFields[D, EM, ED](ErrorFields[string, E]{
		Message: err.Error(),
		Data:    &err,
	})
}

// Report is the envelope produced by FromClassified.
type Report[D any] = JSend[D, *errors.ErrorResponse, *errors.ErrorResponse]

// FromClassified converts any error into a fail or error envelope using its
// classification from the errors package: anticipated failures become fail,
// everything else becomes error. The data is the error's ErrorResponse, so
// the cause chain is not exposed. Returns a success with the zero value of D
// if err is nil.
//
// Example:
//
//	var env jsend.JSend[int, any, any]
//	if err := jsend.DecodeJSON(body, &env); err != nil {
//	    reply := jsend.FromClassified[int](err)
//	    // {"status":"fail","message":"missing required field","data":{"code":"MISSING_FIELD",...}}
//	}
func FromClassified[D any](err error) Report[D] {
	if err == nil {
		var zero D
		return Success[*errors.ErrorResponse, *errors.ErrorResponse](zero)
	}

	resp := errors.ToJSON(err)
	fields := ErrorFields[string, *errors.ErrorResponse]{
		Message: resp.Message,
		Data:    &resp,
	}
	if errors.IsFail(err) {
		return FromFailFields[D, string, *errors.ErrorResponse](fields)
	}
	return FromErrorFields[D, string, *errors.ErrorResponse](fields)
}
