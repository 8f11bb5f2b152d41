package cue

import (
	"context"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"github.com/jmgilman/go/jsend/errors"
)

// ValidationOptions configures validation behavior.
type ValidationOptions struct {
	// Concrete requires all values to be concrete (fully specified).
	Concrete bool

	// Final resolves default values before validation.
	Final bool

	// All reports all errors instead of stopping at the first one.
	All bool
}

// DefaultValidationOptions requires concrete values, finalizes defaults and
// collects every error.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		Concrete: true,
		Final:    true,
		All:      true,
	}
}

// ValidationIssue represents a single validation error with structured information.
type ValidationIssue struct {
	// Path is the field path where the error occurred (e.g., ["code"]).
	Path []string

	// Message is the human-readable error message.
	Message string

	// Position is the source position if available.
	Position token.Pos
}

// String renders the issue as "path: message".
func (i ValidationIssue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return strings.Join(i.Path, ".") + ": " + i.Message
}

// Validate validates a CUE value against a schema using default options.
func Validate(ctx context.Context, schema cue.Value, data cue.Value) error {
	return ValidateWithOptions(ctx, schema, data, DefaultValidationOptions())
}

// ValidateWithOptions unifies data with schema and validates the result.
// Returns CodeSchemaFailed on failure; the error context carries the
// individual issues under "issues".
func ValidateWithOptions(ctx context.Context, schema cue.Value, data cue.Value, opts ValidationOptions) error {
	if err := ctx.Err(); err != nil {
		return wrapSchemaErrorWithContext(err, "context cancelled", nil)
	}

	if err := schema.Err(); err != nil {
		return wrapSchemaErrorWithContext(
			err,
			"schema is invalid",
			makeContext(
				"schema_error", cueerrors.Details(err, nil),
				"issues", extractValidationIssues(err),
			),
		)
	}

	if err := data.Err(); err != nil {
		return wrapSchemaErrorWithContext(
			err,
			"data is invalid",
			makeContext(
				"data_error", cueerrors.Details(err, nil),
				"issues", extractValidationIssues(err),
			),
		)
	}

	unified := schema.Unify(data)

	var cueOpts []cue.Option
	if opts.Concrete {
		cueOpts = append(cueOpts, cue.Concrete(true))
	}
	if opts.Final {
		cueOpts = append(cueOpts, cue.Final())
	}
	if opts.All {
		cueOpts = append(cueOpts, cue.All())
	}

	// Validate directly instead of checking unified.Err() so All can
	// collect every error.
	if err := unified.Validate(cueOpts...); err != nil {
		return wrapSchemaErrorWithContext(
			err,
			"validation failed",
			makeContext(
				"details", cueerrors.Details(err, nil),
				"issues", extractValidationIssues(err),
				"positions", cueerrors.Positions(err),
			),
		)
	}

	return nil
}

// Issues returns the validation issues attached to err by this package, or
// nil if there are none.
func Issues(err error) []ValidationIssue {
	var e errors.Error
	if !errors.As(err, &e) {
		return nil
	}
	issues, _ := e.Context()["issues"].([]ValidationIssue)
	return issues
}

func extractValidationIssues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}

	var issues []ValidationIssue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()

		var pos token.Pos
		if positions := e.InputPositions(); len(positions) > 0 {
			pos = positions[0]
		}

		issues = append(issues, ValidationIssue{
			Path:     e.Path(),
			Message:  fmt.Sprintf(format, args...),
			Position: pos,
		})
	}

	return issues
}
