package cue

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/jmgilman/go/jsend"
	"github.com/jmgilman/go/jsend/codec"
	"github.com/jmgilman/go/jsend/errors"
)

// Definition names exported by a Schema's source.
const (
	DefEnvelope = "#Envelope"
	DefSuccess  = "#Success"
	DefFail     = "#Fail"
	DefError    = "#Error"
	DefCode     = "#Code"
)

// Schema is a compiled CUE schema of the envelope wire contract.
type Schema struct {
	mu     sync.Mutex
	cfg    jsend.Config
	source string
	cueCtx *cue.Context
	root   cue.Value
}

// NewSchema compiles the wire schema for the configuration described by
// opts. Returns CodeInvalidConfig for an invalid configuration and
// CodeSchemaFailed if the generated source does not compile.
func NewSchema(opts ...jsend.Option) (*Schema, error) {
	cfg := jsend.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := schemaSource(cfg)
	cueCtx := cuecontext.New()
	root := cueCtx.CompileString(src, cue.Filename("jsend.cue"))
	if err := root.Err(); err != nil {
		return nil, wrapSchemaErrorWithContext(err, "failed to compile envelope schema", makeContext("source", src))
	}

	return &Schema{
		cfg:    cfg,
		source: src,
		cueCtx: cueCtx,
		root:   root,
	}, nil
}

// Config returns the configuration the schema was generated from.
func (s *Schema) Config() jsend.Config {
	return s.cfg
}

// Source returns the CUE source of the schema.
func (s *Schema) Source() string {
	return s.source
}

// Definition returns one of the schema's definitions, such as DefEnvelope.
func (s *Schema) Definition(name string) (cue.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.root.LookupPath(cue.ParsePath(name))
	if !v.Exists() {
		return cue.Value{}, errors.WithContext(
			errors.New(errors.CodeSchemaFailed, "unknown schema definition"),
			"definition", name,
		)
	}
	return v, nil
}

// ValidateJSON validates a JSON document.
func (s *Schema) ValidateJSON(ctx context.Context, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return wrapSchemaError(err, "context cancelled")
	}

	expr, err := cuejson.Extract("document.json", doc)
	if err != nil {
		return wrapMalformed(err, "malformed JSON document")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validate(ctx, s.cueCtx.BuildExpr(expr))
}

// ValidateYAML validates a YAML document.
func (s *Schema) ValidateYAML(ctx context.Context, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return wrapSchemaError(err, "context cancelled")
	}

	file, err := cueyaml.Extract("document.yaml", doc)
	if err != nil {
		return wrapMalformed(err, "malformed YAML document")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validate(ctx, s.cueCtx.BuildFile(file))
}

// ValidateCBOR validates a CBOR document. Decimal fractions become numbers;
// other CBOR-only values such as byte strings and tags are reported as type
// mismatches by the schema.
func (s *Schema) ValidateCBOR(ctx context.Context, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return wrapSchemaError(err, "context cancelled")
	}

	var v any
	if err := codec.UnmarshalCBOR(doc, &v); err != nil {
		return wrapMalformed(err, "malformed CBOR document")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value := s.cueCtx.Encode(codec.ResolveDecimalFractions(v))
	if err := value.Err(); err != nil {
		return wrapMalformed(err, "CBOR document has no JSON equivalent")
	}
	return s.validate(ctx, value)
}

// ValidateValue validates a document already loaded as a CUE value. The
// value must belong to a context compatible with the schema's.
func (s *Schema) ValidateValue(ctx context.Context, value cue.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validate(ctx, value)
}

// validate picks the variant definition from the document's status and
// validates against it, falling back to the full envelope disjunction when
// the status is missing or unknown. s.mu must be held.
func (s *Schema) validate(ctx context.Context, data cue.Value) error {
	def := DefEnvelope
	if status, err := data.LookupPath(cue.ParsePath("status")).String(); err == nil {
		switch jsend.Status(status) {
		case jsend.StatusSuccess:
			def = DefSuccess
		case jsend.StatusFail:
			def = DefFail
		case jsend.StatusError:
			def = DefError
		}
	}

	err := Validate(ctx, s.root.LookupPath(cue.ParsePath(def)), data)
	if err != nil {
		return errors.WithContext(err, "definition", def)
	}
	return nil
}

const maxInt64Bound = "int & >=-9223372036854775808 & <=9223372036854775807"

// schemaSource renders the CUE source for cfg.
func schemaSource(cfg jsend.Config) string {
	var b strings.Builder

	open := ""
	if !cfg.Strict {
		open = "\n\t..."
	}

	code := "number"
	if cfg.CodeMode == jsend.CodeInt64 {
		code = maxInt64Bound
	}

	fmt.Fprintf(&b, "%s: %s\n\n", DefCode, code)

	fmt.Fprintf(&b, "%s: {\n\tstatus!: %q\n\tdata!:   _%s\n}\n\n", DefSuccess, jsend.StatusSuccess, open)

	if cfg.FailShape == jsend.FailPayload {
		fmt.Fprintf(&b, "%s: {\n\tstatus!: %q\n\tdata!:   _%s\n}\n\n", DefFail, jsend.StatusFail, open)
	} else {
		writeErrorDefinition(&b, DefFail, jsend.StatusFail, open)
	}
	writeErrorDefinition(&b, DefError, jsend.StatusError, open)

	fmt.Fprintf(&b, "%s: %s | %s | %s\n", DefEnvelope, DefSuccess, DefFail, DefError)
	return b.String()
}

func writeErrorDefinition(b *strings.Builder, def string, status jsend.Status, open string) {
	fmt.Fprintf(b, "%s: {\n", def)
	fmt.Fprintf(b, "\tstatus!:  %q\n", status)
	fmt.Fprintf(b, "\tmessage!: string\n")
	fmt.Fprintf(b, "\tcode?:    %s | null\n", DefCode)
	fmt.Fprintf(b, "\tdata?:    _%s\n", open)
	fmt.Fprintf(b, "}\n\n")
}
