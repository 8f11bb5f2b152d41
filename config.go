package jsend

import (
	"fmt"

	"github.com/jmgilman/go/jsend/errors"
)

// FailShape selects the wire shape of the fail variant.
type FailShape string

const (
	// FailMessage encodes fail like error: a required message plus optional
	// code and data.
	FailMessage FailShape = "message"

	// FailPayload encodes fail as the classic JSend shape carrying only a
	// required data payload.
	FailPayload FailShape = "payload"
)

// CodeMode selects how the optional code field is represented on the wire.
type CodeMode string

const (
	// CodeNumber accepts any JSON number and preserves its full precision.
	CodeNumber CodeMode = "number"

	// CodeInt64 restricts codes to signed 64-bit integers. Decoding a code
	// outside that range, or with a fraction, is an error.
	CodeInt64 CodeMode = "int64"
)

// Config controls encoding and decoding.
type Config struct {
	// Strict rejects fields outside the decoded variant's field set.
	Strict bool

	// FailShape selects the fail variant's wire shape.
	FailShape FailShape

	// CodeMode selects the code field's representation.
	CodeMode CodeMode
}

// DefaultConfig returns the default configuration: lenient decoding,
// message-bearing fail, arbitrary-precision codes.
func DefaultConfig() Config {
	return Config{
		Strict:    false,
		FailShape: FailMessage,
		CodeMode:  CodeNumber,
	}
}

// Validate reports unknown enumeration values.
func (c Config) Validate() error {
	switch c.FailShape {
	case FailMessage, FailPayload:
	default:
		return errors.Newf(errors.CodeInvalidConfig, "unknown fail shape %q", c.FailShape)
	}
	switch c.CodeMode {
	case CodeNumber, CodeInt64:
	default:
		return errors.Newf(errors.CodeInvalidConfig, "unknown code mode %q", c.CodeMode)
	}
	return nil
}

// Option configures encoding and decoding.
type Option func(*Config)

// WithStrict rejects unknown fields while decoding.
func WithStrict() Option {
	return func(c *Config) {
		c.Strict = true
	}
}

// WithFailShape selects the fail variant's wire shape.
func WithFailShape(shape FailShape) Option {
	return func(c *Config) {
		c.FailShape = shape
	}
}

// WithCodeMode selects the code field's representation.
func WithCodeMode(mode CodeMode) Option {
	return func(c *Config) {
		c.CodeMode = mode
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func newConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseFailShape parses "message" or "payload".
func ParseFailShape(s string) (FailShape, error) {
	shape := FailShape(s)
	if err := (Config{FailShape: shape, CodeMode: CodeNumber}).Validate(); err != nil {
		return "", err
	}
	return shape, nil
}

// ParseCodeMode parses "number" or "int64".
func ParseCodeMode(s string) (CodeMode, error) {
	mode := CodeMode(s)
	if err := (Config{FailShape: FailMessage, CodeMode: mode}).Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

func (c Config) String() string {
	return fmt.Sprintf("strict=%t fail=%s code=%s", c.Strict, c.FailShape, c.CodeMode)
}
