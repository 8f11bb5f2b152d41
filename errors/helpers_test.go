package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCode(t *testing.T) {
	require.Equal(t, CodeUnknown, GetCode(nil))
	require.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	require.Equal(t, CodeMissingField, GetCode(NewField(CodeMissingField, "data", "x")))

	wrapped := fmt.Errorf("outer: %w", New(CodeInvalidStatus, "x"))
	require.Equal(t, CodeInvalidStatus, GetCode(wrapped))
}

func TestGetField(t *testing.T) {
	require.Empty(t, GetField(nil))
	require.Equal(t, "code", GetField(fmt.Errorf("decode: %w", NewField(CodeInvalidField, "code", "x"))))
}

func TestIsFail(t *testing.T) {
	require.False(t, IsFail(nil))
	require.False(t, IsFail(stderrors.New("plain")))
	require.True(t, IsFail(New(CodeMissingStatus, "x")))
	require.False(t, IsFail(New(CodeEncodeFailed, "x")))
}

func TestAs(t *testing.T) {
	var e Error
	require.True(t, As(fmt.Errorf("ctx: %w", New(CodeMalformed, "x")), &e))
	require.Equal(t, CodeMalformed, e.Code())
}

func TestToJSON(t *testing.T) {
	err := WithContext(NewField(CodeMissingField, "message", "missing required field"), "status", "fail")
	resp := ToJSON(err)

	require.Equal(t, "MISSING_FIELD", resp.Code)
	require.Equal(t, "missing required field", resp.Message)
	require.Equal(t, "FAIL", resp.Classification)
	require.Equal(t, "message", resp.Field)
	require.Equal(t, "fail", resp.Context["status"])
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("disk full"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "disk full", resp.Message)
	require.Equal(t, "ERROR", resp.Classification)
	require.Nil(t, ToJSON(nil))
}

func TestToJSON_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(ToJSON(New(CodeInternal, "x")))
	require.NoError(t, err)
	require.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"x","classification":"ERROR"}`, string(data))
}

func TestToJSON_ExcludesCause(t *testing.T) {
	err := Wrap(stderrors.New("secret path /etc/shadow"), CodeInternal, "internal error")
	data, jerr := json.Marshal(err)

	require.NoError(t, jerr)
	require.NotContains(t, string(data), "shadow")
}

func TestErrorResponse_Error(t *testing.T) {
	require.Equal(t, "[MISSING_STATUS] x", ToJSON(New(CodeMissingStatus, "x")).Error())
}
