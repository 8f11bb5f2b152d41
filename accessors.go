package jsend

import "fmt"

// IsSuccess reports whether the envelope is a success.
func (e Envelope[D, FM, FD, EM, ED]) IsSuccess() bool {
	return e.status == StatusSuccess
}

// IsFail reports whether the envelope is a fail.
func (e Envelope[D, FM, FD, EM, ED]) IsFail() bool {
	return e.status == StatusFail
}

// IsError reports whether the envelope is an error.
func (e Envelope[D, FM, FD, EM, ED]) IsError() bool {
	return e.status == StatusError
}

// IsSuccessAnd reports whether the envelope is a success whose data
// satisfies pred. pred is not called for other variants.
func (e Envelope[D, FM, FD, EM, ED]) IsSuccessAnd(pred func(D) bool) bool {
	return e.status == StatusSuccess && pred(e.data)
}

// IsFailAnd reports whether the envelope is a fail whose fields satisfy
// pred. pred is not called for other variants.
func (e Envelope[D, FM, FD, EM, ED]) IsFailAnd(pred func(ErrorFields[FM, FD]) bool) bool {
	return e.status == StatusFail && pred(e.fail)
}

// IsErrorAnd reports whether the envelope is an error whose fields satisfy
// pred. pred is not called for other variants.
func (e Envelope[D, FM, FD, EM, ED]) IsErrorAnd(pred func(ErrorFields[EM, ED]) bool) bool {
	return e.status == StatusError && pred(e.err)
}

// SuccessValue returns the success data and true, or the zero value and
// false for other variants.
func (e Envelope[D, FM, FD, EM, ED]) SuccessValue() (D, bool) {
	if e.status != StatusSuccess {
		var zero D
		return zero, false
	}
	return e.data, true
}

// FailValue returns the fail fields and true, or the zero value and false
// for other variants.
func (e Envelope[D, FM, FD, EM, ED]) FailValue() (ErrorFields[FM, FD], bool) {
	if e.status != StatusFail {
		return ErrorFields[FM, FD]{}, false
	}
	return e.fail, true
}

// ErrorValue returns the error fields and true, or the zero value and false
// for other variants.
func (e Envelope[D, FM, FD, EM, ED]) ErrorValue() (ErrorFields[EM, ED], bool) {
	if e.status != StatusError {
		return ErrorFields[EM, ED]{}, false
	}
	return e.err, true
}

// Unwrap returns the success data. It panics if the envelope is not a
// success; the panic message includes the payload that was found instead.
//
// Use Unwrap only where any other variant is a bug in the caller. Use
// SuccessValue or UnwrapOr to handle failures.
func (e Envelope[D, FM, FD, EM, ED]) Unwrap() D {
	if e.status != StatusSuccess {
		panic(e.mismatch("called Envelope.Unwrap on " + e.variantPhrase()))
	}
	return e.data
}

// UnwrapFail returns the fail fields. It panics if the envelope is not a
// fail.
func (e Envelope[D, FM, FD, EM, ED]) UnwrapFail() ErrorFields[FM, FD] {
	if e.status != StatusFail {
		panic(e.mismatch("called Envelope.UnwrapFail on " + e.variantPhrase()))
	}
	return e.fail
}

// UnwrapError returns the error fields. It panics if the envelope is not an
// error.
func (e Envelope[D, FM, FD, EM, ED]) UnwrapError() ErrorFields[EM, ED] {
	if e.status != StatusError {
		panic(e.mismatch("called Envelope.UnwrapError on " + e.variantPhrase()))
	}
	return e.err
}

// Expect is Unwrap with a caller-supplied panic message prefix.
func (e Envelope[D, FM, FD, EM, ED]) Expect(message string) D {
	if e.status != StatusSuccess {
		panic(e.mismatch(message))
	}
	return e.data
}

// ExpectFail is UnwrapFail with a caller-supplied panic message prefix.
func (e Envelope[D, FM, FD, EM, ED]) ExpectFail(message string) ErrorFields[FM, FD] {
	if e.status != StatusFail {
		panic(e.mismatch(message))
	}
	return e.fail
}

// ExpectError is UnwrapError with a caller-supplied panic message prefix.
func (e Envelope[D, FM, FD, EM, ED]) ExpectError(message string) ErrorFields[EM, ED] {
	if e.status != StatusError {
		panic(e.mismatch(message))
	}
	return e.err
}

// UnwrapOr returns the success data, or def for any other variant.
func (e Envelope[D, FM, FD, EM, ED]) UnwrapOr(def D) D {
	if e.status != StatusSuccess {
		return def
	}
	return e.data
}

// UnwrapOrElse returns the success data, or the result of fallback for any
// other variant. fallback is only called when it is needed.
func (e Envelope[D, FM, FD, EM, ED]) UnwrapOrElse(fallback func() D) D {
	if e.status != StatusSuccess {
		return fallback()
	}
	return e.data
}

// Defaulter is implemented by payload types whose default differs from the
// Go zero value.
type Defaulter[D any] interface {
	Default() D
}

// UnwrapOrDefault returns the success data, or the default for D: the
// result of D's Default method when D implements Defaulter[D], otherwise
// the zero value.
func (e Envelope[D, FM, FD, EM, ED]) UnwrapOrDefault() D {
	return e.UnwrapOrElse(defaultOf[D])
}

func defaultOf[D any]() D {
	var zero D
	if d, ok := any(zero).(Defaulter[D]); ok {
		return d.Default()
	}
	return zero
}

// mismatch builds the panic message for an accessor called on the wrong
// variant: "<prefix>: <debug rendering of the actual payload>".
func (e Envelope[D, FM, FD, EM, ED]) mismatch(prefix string) string {
	return prefix + ": " + e.payloadGoString()
}

func (e Envelope[D, FM, FD, EM, ED]) payloadGoString() string {
	switch e.status {
	case StatusSuccess:
		return fmt.Sprintf("%#v", e.data)
	case StatusFail:
		return e.fail.GoString()
	case StatusError:
		return e.err.GoString()
	}
	return "<no status>"
}

func (e Envelope[D, FM, FD, EM, ED]) variantPhrase() string {
	switch e.status {
	case StatusSuccess:
		return "a success value"
	case StatusFail:
		return "a fail value"
	case StatusError:
		return "an error value"
	}
	return "an envelope without status"
}
