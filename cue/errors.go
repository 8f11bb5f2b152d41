package cue

import (
	"github.com/jmgilman/go/jsend/errors"
)

// wrapSchemaError wraps an error with CodeSchemaFailed.
func wrapSchemaError(err error, message string) errors.Error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.CodeSchemaFailed, message)
}

// wrapSchemaErrorWithContext wraps an error with CodeSchemaFailed and
// attaches context metadata.
func wrapSchemaErrorWithContext(err error, message string, ctx map[string]interface{}) errors.Error {
	if err == nil {
		return nil
	}
	return errors.WithContextMap(errors.Wrap(err, errors.CodeSchemaFailed, message), ctx)
}

// wrapMalformed wraps a parse failure with CodeMalformed.
func wrapMalformed(err error, message string) errors.Error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.CodeMalformed, message)
}

// makeContext builds a context map from key/value pairs.
// Example: makeContext("format", "json", "bytes", 42).
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	if len(kvPairs) == 0 {
		return nil
	}

	ctx := make(map[string]interface{})
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}

	if len(ctx) == 0 {
		return nil
	}
	return ctx
}
