package jsend

import (
	"bytes"

	"github.com/jmgilman/go/jsend/codec"
	"github.com/jmgilman/go/jsend/errors"
	"gopkg.in/yaml.v3"
)

// EncodeJSON encodes the envelope as a compact JSON object.
//
// Example:
//
//	data, err := jsend.EncodeJSON(jsend.NewFail[any, any, any]("bad input"))
//	// {"status":"fail","message":"bad input"}
func EncodeJSON[D, FM, FD, EM, ED any](e Envelope[D, FM, FD, EM, ED], opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(codec.NewJSONWriter(&buf), e, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeJSON decodes a JSON object into e.
//
// Example:
//
//	var env jsend.JSend[int, any, any]
//	err := jsend.DecodeJSON([]byte(`{"status":"success","data":5}`), &env)
func DecodeJSON[D, FM, FD, EM, ED any](data []byte, e *Envelope[D, FM, FD, EM, ED], opts ...Option) error {
	r, err := codec.NewJSONReader(data)
	if err != nil {
		return err
	}
	return Decode(r, e, opts...)
}

// EncodeYAML encodes the envelope as a YAML document.
func EncodeYAML[D, FM, FD, EM, ED any](e Envelope[D, FM, FD, EM, ED], opts ...Option) ([]byte, error) {
	node, err := encodeYAMLNode(e, opts...)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeEncodeFailed, "failed to render YAML")
	}
	return out, nil
}

// DecodeYAML decodes a YAML mapping document into e.
func DecodeYAML[D, FM, FD, EM, ED any](data []byte, e *Envelope[D, FM, FD, EM, ED], opts ...Option) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return errors.Wrap(err, errors.CodeMalformed, "document is not valid YAML")
	}
	return decodeYAMLNode(&node, e, opts...)
}

func encodeYAMLNode[D, FM, FD, EM, ED any](e Envelope[D, FM, FD, EM, ED], opts ...Option) (*yaml.Node, error) {
	w := codec.NewYAMLWriter()
	if err := Encode(w, e, opts...); err != nil {
		return nil, err
	}
	return w.Node(), nil
}

func decodeYAMLNode[D, FM, FD, EM, ED any](node *yaml.Node, e *Envelope[D, FM, FD, EM, ED], opts ...Option) error {
	r, err := codec.NewYAMLReader(node)
	if err != nil {
		return err
	}
	return Decode(r, e, opts...)
}

// EncodeCBOR encodes the envelope as a definite-length CBOR map.
func EncodeCBOR[D, FM, FD, EM, ED any](e Envelope[D, FM, FD, EM, ED], opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(codec.NewCBORWriter(&buf), e, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeCBOR decodes a CBOR map into e.
func DecodeCBOR[D, FM, FD, EM, ED any](data []byte, e *Envelope[D, FM, FD, EM, ED], opts ...Option) error {
	r, err := codec.NewCBORReader(data)
	if err != nil {
		return err
	}
	return Decode(r, e, opts...)
}

// MarshalJSON implements json.Marshaler with the default configuration.
func (e Envelope[D, FM, FD, EM, ED]) MarshalJSON() ([]byte, error) {
	return EncodeJSON(e)
}

// UnmarshalJSON implements json.Unmarshaler with the default configuration.
func (e *Envelope[D, FM, FD, EM, ED]) UnmarshalJSON(data []byte) error {
	return DecodeJSON(data, e)
}

// MarshalYAML implements yaml.Marshaler with the default configuration.
func (e Envelope[D, FM, FD, EM, ED]) MarshalYAML() (interface{}, error) {
	return encodeYAMLNode(e)
}

// UnmarshalYAML implements yaml.Unmarshaler with the default configuration.
func (e *Envelope[D, FM, FD, EM, ED]) UnmarshalYAML(value *yaml.Node) error {
	return decodeYAMLNode(value, e)
}

// MarshalCBOR implements cbor.Marshaler with the default configuration.
func (e Envelope[D, FM, FD, EM, ED]) MarshalCBOR() ([]byte, error) {
	return EncodeCBOR(e)
}

// UnmarshalCBOR implements cbor.Unmarshaler with the default configuration.
func (e *Envelope[D, FM, FD, EM, ED]) UnmarshalCBOR(data []byte) error {
	return DecodeCBOR(data, e)
}
