package jsend

import (
	"encoding/json"
	"testing"

	"github.com/jmgilman/go/jsend/errors"
	"github.com/stretchr/testify/require"
)

type envelope = Envelope[int, string, validation, string, validation]

func jsonKeys(t *testing.T, data []byte) []string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestEncodeJSON_WireForms(t *testing.T) {
	tests := []struct {
		name string
		env  JSend[int, validation, any]
		want string
	}{
		{
			name: "success",
			env:  Success[validation, any](42),
			want: `{"status":"success","data":42}`,
		},
		{
			name: "fail without optional fields",
			env:  NewFail[int, validation, any]("bad input"),
			want: `{"status":"fail","message":"bad input"}`,
		},
		{
			name: "fail with code and data",
			env: FromFailFields[int, string, any](ErrorFields[string, validation]{
				Message: "bad input",
				Code:    Ptr(NewCode(400)),
				Data:    &validation{Field: "x"},
			}),
			want: `{"status":"fail","message":"bad input","code":400,"data":{"field":"x"}}`,
		},
		{
			name: "error without optional fields",
			env:  NewError[int, validation, any]("disk full"),
			want: `{"status":"error","message":"disk full"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeJSON(tt.env)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncodeJSON_OmitsAbsentFields(t *testing.T) {
	data, err := EncodeJSON(NewError[int, any, any]("m"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"status", "message"}, jsonKeys(t, data))
	require.NotContains(t, string(data), "null")

	data, err = EncodeJSON(NewFail[int, any, any]("m").WithCode(NewCode(3)))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"status", "message", "code"}, jsonKeys(t, data))

	payload := any("details")
	data, err = EncodeJSON(FromErrorFields[int, string, any](ErrorFields[string, any]{Message: "m", Data: &payload}))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"status", "message", "data"}, jsonKeys(t, data))
}

func TestEncodeJSON_ZeroEnvelope(t *testing.T) {
	var env JSend[int, any, any]
	_, err := EncodeJSON(env)
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidEnvelope, errors.GetCode(err))
}

func TestEncodeJSON_MessageTypes(t *testing.T) {
	type reason string

	env := NewErrorOf[int, string, any, reason, any]("quota exceeded")
	data, err := EncodeJSON(env)
	require.NoError(t, err)
	require.Equal(t, `{"status":"error","message":"quota exceeded"}`, string(data))

	var decoded Envelope[int, string, any, reason, any]
	require.NoError(t, DecodeJSON(data, &decoded))
	require.Equal(t, env, decoded)
}

func TestDecodeJSON_Dispatch(t *testing.T) {
	var env JSend[int, any, any]
	require.NoError(t, DecodeJSON([]byte(`{"status":"success","data":5}`), &env))
	require.Equal(t, Success[any, any](5), env)

	// Field order is irrelevant.
	require.NoError(t, DecodeJSON([]byte(`{"message":"bad","status":"fail"}`), &env))
	require.Equal(t, NewFail[int, any, any]("bad"), env)

	require.NoError(t, DecodeJSON([]byte(`{"status":"error","message":"boom","code":500}`), &env))
	require.Equal(t, NewError[int, any, any]("boom").WithCode(NewCode(500)), env)
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		code  errors.ErrorCode
		field string
	}{
		{"unknown status", `{"status":"bogus"}`, errors.CodeInvalidStatus, "status"},
		{"status not text", `{"status":1,"data":2}`, errors.CodeInvalidStatus, "status"},
		{"missing status", `{"data":5}`, errors.CodeMissingStatus, "status"},
		{"success without data", `{"status":"success"}`, errors.CodeMissingField, "data"},
		{"fail without message", `{"status":"fail"}`, errors.CodeMissingField, "message"},
		{"error without message", `{"status":"error","code":1}`, errors.CodeMissingField, "message"},
		{"message not text", `{"status":"error","message":{"a":1}}`, errors.CodeInvalidField, "message"},
		{"message null", `{"status":"error","message":null}`, errors.CodeInvalidField, "message"},
		{"code not number", `{"status":"fail","message":"m","code":"400"}`, errors.CodeInvalidField, "code"},
		{"data wrong shape", `{"status":"success","data":"five"}`, errors.CodeInvalidField, "data"},
		{"not an object", `[1,2,3]`, errors.CodeMalformed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env JSend[int, any, any]
			err := DecodeJSON([]byte(tt.doc), &env)
			require.Error(t, err)
			require.Equal(t, tt.code, errors.GetCode(err))
			require.Equal(t, tt.field, errors.GetField(err))
			require.True(t, errors.IsFail(err))
		})
	}
}

func TestDecodeJSON_NoPartialResult(t *testing.T) {
	env := Success[any, any](1)
	err := DecodeJSON([]byte(`{"status":"error","message":"m","code":"x"}`), &env)
	require.Error(t, err)
	require.Equal(t, Success[any, any](1), env)
}

func TestDecodeJSON_OptionalNullsAreAbsent(t *testing.T) {
	var env JSend[int, any, any]
	require.NoError(t, DecodeJSON([]byte(`{"status":"fail","message":"m","code":null,"data":null}`), &env))
	require.Equal(t, NewFail[int, any, any]("m"), env)
}

func TestDecodeJSON_UnknownFields(t *testing.T) {
	doc := []byte(`{"status":"success","data":1,"message":"ignored","trace":"abc"}`)

	var env JSend[int, any, any]
	require.NoError(t, DecodeJSON(doc, &env))
	require.Equal(t, Success[any, any](1), env)

	err := DecodeJSON(doc, &env, WithStrict())
	require.Error(t, err)
	require.Equal(t, errors.CodeUnknownField, errors.GetCode(err))
	require.Equal(t, "message", errors.GetField(err))

	var e errors.Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, []string{"message", "trace"}, e.Context()["unknown"])

	require.NoError(t, DecodeJSON([]byte(`{"status":"error","message":"m","code":1,"data":{}}`), &env, WithStrict()))
}

func TestCodeModes(t *testing.T) {
	big := []byte(`{"status":"error","message":"m","code":123456789012345678901234567890}`)
	frac := []byte(`{"status":"error","message":"m","code":1.5}`)

	var env JSend[int, any, any]
	require.NoError(t, DecodeJSON(big, &env))
	out, err := EncodeJSON(env)
	require.NoError(t, err)
	require.JSONEq(t, string(big), string(out))

	require.NoError(t, DecodeJSON(frac, &env))
	require.Equal(t, "1.5", env.UnwrapError().Code.String())

	for _, doc := range [][]byte{big, frac} {
		err := DecodeJSON(doc, &env, WithCodeMode(CodeInt64))
		require.Error(t, err)
		require.Equal(t, errors.CodeInvalidField, errors.GetCode(err))
		require.Equal(t, "code", errors.GetField(err))
	}

	code, err := ParseCode("123456789012345678901234567890")
	require.NoError(t, err)
	_, err = EncodeJSON(NewError[int, any, any]("m").WithCode(code), WithCodeMode(CodeInt64))
	require.Error(t, err)
	require.Equal(t, "code", errors.GetField(err))
}

func TestFailPayloadShape(t *testing.T) {
	env := FailWithData[int, string, string, any](validation{Field: "x"})

	data, err := EncodeJSON(env, WithFailShape(FailPayload))
	require.NoError(t, err)
	require.Equal(t, `{"status":"fail","data":{"field":"x"}}`, string(data))

	var decoded JSend[int, validation, any]
	require.NoError(t, DecodeJSON(data, &decoded, WithFailShape(FailPayload)))
	require.Equal(t, env, decoded)

	err = DecodeJSON([]byte(`{"status":"fail","message":"m"}`), &decoded, WithFailShape(FailPayload))
	require.Equal(t, errors.CodeMissingField, errors.GetCode(err))

	err = DecodeJSON([]byte(`{"status":"fail","data":{},"message":"m"}`), &decoded,
		WithFailShape(FailPayload), WithStrict())
	require.Equal(t, errors.CodeUnknownField, errors.GetCode(err))

	_, err = EncodeJSON(NewFail[int, validation, any]("m"), WithFailShape(FailPayload))
	require.Equal(t, errors.CodeInvalidEnvelope, errors.GetCode(err))
}

func TestInvalidConfig(t *testing.T) {
	_, err := EncodeJSON(Success[any, any](1), WithCodeMode("float"))
	require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))

	var env JSend[int, any, any]
	err = DecodeJSON([]byte(`{"status":"success","data":1}`), &env, WithFailShape("none"))
	require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestRoundTrip(t *testing.T) {
	values := []envelope{
		SuccessOf[int, string, validation, string, validation](42),
		NewFailOf[int, string, validation, string, validation]("bad input"),
		NewFailOf[int, string, validation, string, validation]("bad input").WithCode(NewCode(400)),
		FromFailFields[int, string, validation](ErrorFields[string, validation]{
			Message: "bad input",
			Code:    Ptr(NewCode(-1)),
			Data:    &validation{Field: "x"},
		}),
		NewErrorOf[int, string, validation, string, validation]("disk full"),
		FromErrorFields[int, string, validation](ErrorFields[string, validation]{
			Message: "disk full",
			Data:    &validation{Field: "/var"},
		}),
	}

	formats := map[string]struct {
		encode func(envelope) ([]byte, error)
		decode func([]byte, *envelope) error
	}{
		"json": {
			encode: func(e envelope) ([]byte, error) { return EncodeJSON(e) },
			decode: func(b []byte, e *envelope) error { return DecodeJSON(b, e) },
		},
		"yaml": {
			encode: func(e envelope) ([]byte, error) { return EncodeYAML(e) },
			decode: func(b []byte, e *envelope) error { return DecodeYAML(b, e) },
		},
		"cbor": {
			encode: func(e envelope) ([]byte, error) { return EncodeCBOR(e) },
			decode: func(b []byte, e *envelope) error { return DecodeCBOR(b, e) },
		},
	}

	for name, format := range formats {
		for _, v := range values {
			t.Run(name+"/"+v.String(), func(t *testing.T) {
				data, err := format.encode(v)
				require.NoError(t, err)

				var decoded envelope
				require.NoError(t, format.decode(data, &decoded))
				require.Equal(t, v, decoded)
			})
		}
	}
}

func TestMarshalers_Nested(t *testing.T) {
	type response struct {
		RequestID string               `json:"request_id" yaml:"request_id"`
		Result    JSend[int, any, any] `json:"result" yaml:"result"`
	}

	in := response{RequestID: "r1", Result: NewError[int, any, any]("boom")}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, `{"request_id":"r1","result":{"status":"error","message":"boom"}}`, string(data))

	var out response
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"request_id":"r2","result":{"status":"nope"}}`), &out)
	require.Equal(t, errors.CodeInvalidStatus, errors.GetCode(err))
}
