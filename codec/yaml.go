package codec

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/jmgilman/go/jsend/errors"
	"gopkg.in/yaml.v3"
)

// YAMLWriter builds one YAML mapping node.
type YAMLWriter struct {
	node    *yaml.Node
	counter fieldCounter
}

// NewYAMLWriter returns a writer that builds a yaml.Node mapping.
func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{}
}

// Begin allocates the mapping with room for exactly the declared fields.
func (y *YAMLWriter) Begin(fields int) error {
	if err := y.counter.begin(fields); err != nil {
		return err
	}
	y.node = &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, 2*fields),
	}
	return nil
}

func (y *YAMLWriter) Field(key string, value any) error {
	if err := y.counter.next(key); err != nil {
		return err
	}

	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	v := &yaml.Node{}
	if n, ok := value.(Number); ok {
		if _, err := ParseNumber(string(n)); err != nil {
			return err
		}
		tag := "!!float"
		if n.IsInteger() {
			tag = "!!int"
		}
		v.Kind, v.Tag, v.Value = yaml.ScalarNode, tag, string(n)
	} else if err := v.Encode(value); err != nil {
		return errors.WrapField(err, errors.CodeEncodeFailed, key, "failed to encode value")
	}

	y.node.Content = append(y.node.Content, k, v)
	return nil
}

func (y *YAMLWriter) End() error {
	return y.counter.end()
}

// Node returns the built mapping, or nil before Begin.
func (y *YAMLWriter) Node() *yaml.Node {
	return y.node
}

// YAMLReader reads the fields of one YAML mapping node.
type YAMLReader struct {
	keys   []string
	fields map[string]*yaml.Node
}

// NewYAMLReader reads a mapping node. Document nodes are unwrapped and alias
// nodes resolved. Returns CodeMalformed if the node is not a mapping.
func NewYAMLReader(node *yaml.Node) (*YAMLReader, error) {
	node = resolveYAML(node)
	if node != nil && node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, errors.New(errors.CodeMalformed, "empty YAML document")
		}
		node = resolveYAML(node.Content[0])
	}
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, errors.New(errors.CodeMalformed, "document is not a YAML mapping")
	}

	r := &YAMLReader{fields: make(map[string]*yaml.Node, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := resolveYAML(node.Content[i])
		if k.Kind != yaml.ScalarNode {
			return nil, errors.New(errors.CodeMalformed, "mapping key is not a scalar")
		}
		if _, dup := r.fields[k.Value]; !dup {
			r.keys = append(r.keys, k.Value)
		}
		r.fields[k.Value] = resolveYAML(node.Content[i+1])
	}
	return r, nil
}

func resolveYAML(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func (y *YAMLReader) Keys() []string {
	return append([]string(nil), y.keys...)
}

func (y *YAMLReader) Has(key string) bool {
	_, ok := y.fields[key]
	return ok
}

func (y *YAMLReader) IsNull(key string) bool {
	n, ok := y.fields[key]
	return ok && n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func (y *YAMLReader) Text(key string) (string, error) {
	n, ok := y.fields[key]
	if !ok {
		return "", missingField(key)
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
		return "", errors.NewField(errors.CodeInvalidField, key, "expected text")
	}
	return n.Value, nil
}

// Number accepts !!int and !!float scalars, normalising YAML integer forms
// such as 0x1f or 1_000 to decimal.
func (y *YAMLReader) Number(key string) (Number, error) {
	n, ok := y.fields[key]
	if !ok {
		return "", missingField(key)
	}
	if n.Kind != yaml.ScalarNode {
		return "", errors.NewField(errors.CodeInvalidField, key, "expected a number")
	}

	switch n.ShortTag() {
	case "!!int":
		lit := strings.ReplaceAll(n.Value, "_", "")
		if i, err := strconv.ParseInt(lit, 0, 64); err == nil {
			return Number(strconv.FormatInt(i, 10)), nil
		}
		if b, ok := new(big.Int).SetString(lit, 0); ok {
			return Number(b.String()), nil
		}
	case "!!float":
		if num, err := ParseNumber(n.Value); err == nil {
			return num, nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64)
		if err == nil {
			if num, ok := floatNumber(f, 64); ok {
				return num, nil
			}
		}
	}
	return "", errors.NewField(errors.CodeInvalidField, key, "expected a number")
}

func (y *YAMLReader) Decode(key string, target any) error {
	n, ok := y.fields[key]
	if !ok {
		return missingField(key)
	}
	if err := n.Decode(target); err != nil {
		return errors.WrapField(err, errors.CodeInvalidField, key, "failed to decode field")
	}
	return nil
}
