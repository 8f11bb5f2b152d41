package codec

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/jmgilman/go/jsend/errors"
)

// JSONWriter writes one JSON object to an io.Writer.
type JSONWriter struct {
	w       io.Writer
	counter fieldCounter
}

// NewJSONWriter returns a writer that emits a compact JSON object to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

func (j *JSONWriter) Begin(fields int) error {
	if err := j.counter.begin(fields); err != nil {
		return err
	}
	_, err := j.w.Write([]byte{'{'})
	return err
}

func (j *JSONWriter) Field(key string, value any) error {
	if err := j.counter.next(key); err != nil {
		return err
	}

	k, err := json.Marshal(key)
	if err != nil {
		return errors.WrapField(err, errors.CodeEncodeFailed, key, "failed to encode key")
	}
	v, err := marshalJSONValue(value)
	if err != nil {
		return errors.WrapField(err, errors.CodeEncodeFailed, key, "failed to encode value")
	}

	var buf bytes.Buffer
	buf.Grow(len(k) + len(v) + 2)
	if j.counter.written > 1 {
		buf.WriteByte(',')
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	_, err = j.w.Write(buf.Bytes())
	return err
}

func (j *JSONWriter) End() error {
	if err := j.counter.end(); err != nil {
		return err
	}
	_, err := j.w.Write([]byte{'}'})
	return err
}

func marshalJSONValue(value any) ([]byte, error) {
	if n, ok := value.(Number); ok {
		if _, err := ParseNumber(string(n)); err != nil {
			return nil, err
		}
		return []byte(n), nil
	}
	return json.Marshal(value)
}

// JSONReader reads the fields of one JSON object.
type JSONReader struct {
	fields map[string]json.RawMessage
}

// NewJSONReader parses data as a JSON object.
// Returns CodeMalformed if data is not a JSON object.
func NewJSONReader(data []byte) (*JSONReader, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, errors.CodeMalformed, "document is not a JSON object")
	}
	if fields == nil {
		return nil, errors.New(errors.CodeMalformed, "document is null")
	}
	return &JSONReader{fields: fields}, nil
}

func (j *JSONReader) Keys() []string {
	keys := make([]string, 0, len(j.fields))
	for k := range j.fields {
		keys = append(keys, k)
	}
	return keys
}

func (j *JSONReader) Has(key string) bool {
	_, ok := j.fields[key]
	return ok
}

func (j *JSONReader) IsNull(key string) bool {
	raw, ok := j.fields[key]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (j *JSONReader) Text(key string) (string, error) {
	raw, ok := j.fields[key]
	if !ok {
		return "", missingField(key)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", errors.NewField(errors.CodeInvalidField, key, "expected text")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.WrapField(err, errors.CodeInvalidField, key, "expected text")
	}
	return s, nil
}

func (j *JSONReader) Number(key string) (Number, error) {
	raw, ok := j.fields[key]
	if !ok {
		return "", missingField(key)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", errors.WrapField(err, errors.CodeInvalidField, key, "expected a number")
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", errors.NewField(errors.CodeInvalidField, key, "expected a number")
	}
	return Number(n), nil
}

func (j *JSONReader) Decode(key string, target any) error {
	raw, ok := j.fields[key]
	if !ok {
		return missingField(key)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.WrapField(err, errors.CodeInvalidField, key, "failed to decode field")
	}
	return nil
}
