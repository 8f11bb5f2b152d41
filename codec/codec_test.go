package codec

import (
	"bytes"
	stderrors "errors"
	"math/big"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/jmgilman/go/jsend/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type failingWriter struct{}

var errWriteFailed = stderrors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestParseNumber(t *testing.T) {
	valid := []string{"0", "-1", "400", "3.14", "1e10", "-2.5E-3", "123456789012345678901234567890"}
	for _, s := range valid {
		n, err := ParseNumber(s)
		require.NoError(t, err, s)
		require.Equal(t, s, n.String())
	}

	invalid := []string{"", "01", "+1", "1.", ".5", "0x10", "NaN", "1e", "abc"}
	for _, s := range invalid {
		_, err := ParseNumber(s)
		require.Error(t, err, s)
		require.Equal(t, errors.CodeInvalidField, errors.GetCode(err))
	}
}

func TestNumber_Int64(t *testing.T) {
	i, err := Number("-42").Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-42), i)

	_, err = Number("9223372036854775808").Int64()
	require.Error(t, err)

	_, err = Number("1.5").Int64()
	require.Error(t, err)
}

func TestNumber_BigInt(t *testing.T) {
	b, ok := Number("123456789012345678901234567890").BigInt()
	require.True(t, ok)
	require.Equal(t, "123456789012345678901234567890", b.String())

	_, ok = Number("1e3").BigInt()
	require.False(t, ok)
}

func TestWriters_FieldCount(t *testing.T) {
	writers := map[string]func() ObjectWriter{
		"json": func() ObjectWriter { return NewJSONWriter(&bytes.Buffer{}) },
		"yaml": func() ObjectWriter { return NewYAMLWriter() },
		"cbor": func() ObjectWriter { return NewCBORWriter(&bytes.Buffer{}) },
	}

	for name, newWriter := range writers {
		t.Run(name+"/over-declared", func(t *testing.T) {
			w := newWriter()
			require.NoError(t, w.Begin(2))
			require.NoError(t, w.Field("status", "success"))
			err := w.End()
			require.Error(t, err)
			require.Equal(t, errors.CodeFieldCount, errors.GetCode(err))
		})

		t.Run(name+"/under-declared", func(t *testing.T) {
			w := newWriter()
			require.NoError(t, w.Begin(1))
			require.NoError(t, w.Field("status", "success"))
			err := w.Field("data", 1)
			require.Error(t, err)
			require.Equal(t, errors.CodeFieldCount, errors.GetCode(err))
			require.Equal(t, "data", errors.GetField(err))
		})

		t.Run(name+"/field-before-begin", func(t *testing.T) {
			require.Error(t, newWriter().Field("status", "success"))
		})

		t.Run(name+"/invalid-number", func(t *testing.T) {
			w := newWriter()
			require.NoError(t, w.Begin(1))
			require.Error(t, w.Field("code", Number("12abc")))
		})
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	require.NoError(t, w.Begin(4))
	require.NoError(t, w.Field("status", "fail"))
	require.NoError(t, w.Field("message", "bad input"))
	require.NoError(t, w.Field("code", Number("400")))
	require.NoError(t, w.Field("data", map[string]string{"field": "x"}))
	require.NoError(t, w.End())

	require.Equal(t, `{"status":"fail","message":"bad input","code":400,"data":{"field":"x"}}`, buf.String())
}

func TestJSONWriter_PropagatesWriteError(t *testing.T) {
	w := NewJSONWriter(failingWriter{})
	err := w.Begin(1)
	require.ErrorIs(t, err, errWriteFailed)
}

func TestJSONReader(t *testing.T) {
	r, err := NewJSONReader([]byte(`{"message":"bad input","status":"fail","code":400,"data":null,"big":123456789012345678901234567890}`))
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"message", "status", "code", "data", "big"}, r.Keys())
	require.True(t, r.Has("data"))
	require.True(t, r.IsNull("data"))
	require.False(t, r.IsNull("code"))
	require.False(t, r.Has("missing"))

	s, err := r.Text("status")
	require.NoError(t, err)
	require.Equal(t, "fail", s)

	n, err := r.Number("code")
	require.NoError(t, err)
	require.Equal(t, Number("400"), n)

	n, err = r.Number("big")
	require.NoError(t, err)
	require.Equal(t, Number("123456789012345678901234567890"), n)

	_, err = r.Text("code")
	require.Equal(t, errors.CodeInvalidField, errors.GetCode(err))

	_, err = r.Number("message")
	require.Equal(t, errors.CodeInvalidField, errors.GetCode(err))

	_, err = r.Text("missing")
	require.Equal(t, errors.CodeMissingField, errors.GetCode(err))
}

func TestJSONReader_Malformed(t *testing.T) {
	for _, doc := range []string{`[1,2]`, `"text"`, `null`, `{`, ``} {
		_, err := NewJSONReader([]byte(doc))
		require.Error(t, err, doc)
		require.Equal(t, errors.CodeMalformed, errors.GetCode(err), doc)
	}
}

func TestYAMLWriter(t *testing.T) {
	w := NewYAMLWriter()
	require.NoError(t, w.Begin(3))
	require.NoError(t, w.Field("status", "error"))
	require.NoError(t, w.Field("message", "true"))
	require.NoError(t, w.Field("code", Number("500")))
	require.NoError(t, w.End())

	out, err := yaml.Marshal(w.Node())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, map[string]any{"status": "error", "message": "true", "code": 500}, decoded)
}

func TestYAMLReader(t *testing.T) {
	doc := "status: fail\nmessage: bad input\ncode: 0x1F\nratio: 2.5\ndata: ~\nnum_text: 12\n"
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(doc), &node))

	r, err := NewYAMLReader(&node)
	require.NoError(t, err)

	require.Equal(t, []string{"status", "message", "code", "ratio", "data", "num_text"}, r.Keys())
	require.True(t, r.IsNull("data"))

	n, err := r.Number("code")
	require.NoError(t, err)
	require.Equal(t, Number("31"), n)

	n, err = r.Number("ratio")
	require.NoError(t, err)
	require.Equal(t, Number("2.5"), n)

	_, err = r.Text("num_text")
	require.Equal(t, errors.CodeInvalidField, errors.GetCode(err))
}

func TestYAMLReader_Malformed(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("- a\n- b\n"), &node))
	_, err := NewYAMLReader(&node)
	require.Equal(t, errors.CodeMalformed, errors.GetCode(err))

	_, err = NewYAMLReader(&yaml.Node{Kind: yaml.DocumentNode})
	require.Equal(t, errors.CodeMalformed, errors.GetCode(err))
}

func TestCBORMapHeader(t *testing.T) {
	require.Equal(t, []byte{0xa0}, cborMapHeader(0))
	require.Equal(t, []byte{0xa4}, cborMapHeader(4))
	require.Equal(t, []byte{0xb8, 0x18}, cborMapHeader(24))
	require.Equal(t, []byte{0xb9, 0x01, 0x00}, cborMapHeader(256))
}

func TestCBORWriterReader(t *testing.T) {
	var buf bytes.Buffer
	w := NewCBORWriter(&buf)

	require.NoError(t, w.Begin(4))
	require.NoError(t, w.Field("status", "fail"))
	require.NoError(t, w.Field("message", "bad input"))
	require.NoError(t, w.Field("code", Number("123456789012345678901234567890")))
	require.NoError(t, w.Field("data", map[string]any{"field": "x"}))
	require.NoError(t, w.End())

	// Definite-length map with four pairs.
	require.Equal(t, byte(0xa4), buf.Bytes()[0])

	r, err := NewCBORReader(buf.Bytes())
	require.NoError(t, err)

	s, err := r.Text("message")
	require.NoError(t, err)
	require.Equal(t, "bad input", s)

	n, err := r.Number("code")
	require.NoError(t, err)
	require.Equal(t, Number("123456789012345678901234567890"), n)

	var data any
	require.NoError(t, r.Decode("data", &data))
	require.Equal(t, map[string]any{"field": "x"}, data)

	_, err = r.Text("code")
	require.Equal(t, errors.CodeInvalidField, errors.GetCode(err))
}

func TestCBORWriter_DecimalFraction(t *testing.T) {
	tests := []struct {
		literal Number
		exp     int64
		mant    string
	}{
		{literal: "400.0", exp: -1, mant: "4000"},
		{literal: "1e2", exp: 2, mant: "1"},
		{literal: "-0.10", exp: -2, mant: "-10"},
		{literal: "0.1000000000000000000001", exp: -22, mant: "1000000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(string(tt.literal), func(t *testing.T) {
			v, err := marshalCBORValue(tt.literal)
			require.NoError(t, err)

			var tag cbor.Tag
			require.NoError(t, UnmarshalCBOR(v, &tag))
			require.Equal(t, uint64(tagDecimalFraction), tag.Number)

			parts, ok := tag.Content.([]any)
			require.True(t, ok)
			require.Len(t, parts, 2)

			exp, ok := cborInteger(parts[0])
			require.True(t, ok)
			require.Equal(t, tt.exp, exp.Int64())

			mant, ok := cborInteger(parts[1])
			require.True(t, ok)
			require.Equal(t, tt.mant, mant.String())
		})
	}
}

func TestCBORWriter_FloatWhenLiteralIsExact(t *testing.T) {
	v, err := marshalCBORValue(Number("0.5"))
	require.NoError(t, err)

	var f float64
	require.NoError(t, UnmarshalCBOR(v, &f))
	require.Equal(t, 0.5, f)
}

func TestNumberFromDecimalFraction(t *testing.T) {
	tests := []struct {
		exp  int64
		mant int64
		want Number
	}{
		{exp: 0, mant: 7, want: "7"},
		{exp: 3, mant: -2, want: "-2e3"},
		{exp: -1, mant: 4000, want: "400.0"},
		{exp: -3, mant: 5, want: "0.005"},
		{exp: -40, mant: 5, want: "5e-40"},
	}

	for _, tt := range tests {
		got := numberFromDecimalFraction(tt.exp, big.NewInt(tt.mant))
		require.Equal(t, tt.want, got)
		_, err := ParseNumber(string(got))
		require.NoError(t, err)
	}
}

func TestResolveDecimalFractions(t *testing.T) {
	data, err := MarshalCBOR(map[string]any{
		"code": cbor.Tag{Number: tagDecimalFraction, Content: []any{int64(-1), int64(4000)}},
		"list": []any{cbor.Tag{Number: tagDecimalFraction, Content: []any{int64(2), int64(1)}}, "x"},
	})
	require.NoError(t, err)

	var v any
	require.NoError(t, UnmarshalCBOR(data, &v))

	got := ResolveDecimalFractions(v)
	require.Equal(t, map[string]any{
		"code": Number("400.0"),
		"list": []any{Number("1e2"), "x"},
	}, got)
}

func TestNumber_MarshalJSON(t *testing.T) {
	b, err := Number("1e400").MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "1e400", string(b))

	_, err = Number("NaN").MarshalJSON()
	require.Error(t, err)
}

func TestCBORReader_Null(t *testing.T) {
	data, err := MarshalCBOR(map[string]any{"status": "error", "data": nil})
	require.NoError(t, err)

	r, err := NewCBORReader(data)
	require.NoError(t, err)
	require.True(t, r.IsNull("data"))
	require.False(t, r.IsNull("status"))
}

func TestCBORReader_Malformed(t *testing.T) {
	data, err := MarshalCBOR([]int{1, 2})
	require.NoError(t, err)

	_, err = NewCBORReader(data)
	require.Equal(t, errors.CodeMalformed, errors.GetCode(err))
}
