package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/jsend"
	"github.com/jmgilman/go/jsend/cue"
	"github.com/jmgilman/go/jsend/errors"
)

// document is the envelope shape the CLI works with: text messages and
// arbitrary payloads.
type document = jsend.JSend[any, any, any]

type format string

const (
	formatJSON format = "json"
	formatYAML format = "yaml"
	formatCBOR format = "cbor"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatJSON, formatYAML, formatCBOR:
		return f, nil
	case "yml":
		return formatYAML, nil
	}
	return "", errors.Newf(errors.CodeInvalidConfig, "unknown format %q (want json, yaml or cbor)", s)
}

// detectFormat returns explicit when set, otherwise the format implied by
// path's extension.
func detectFormat(path, explicit string) (format, error) {
	if explicit != "" {
		return parseFormat(explicit)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.CodeInvalidConfig, "cannot detect format of %s: no extension (use --format)", path)
	}
	f, err := parseFormat(ext)
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeInvalidConfig, "cannot detect format of %s", path)
	}
	return f, nil
}

// readFile reads path from e's filesystem, resolving relative paths
// against e.cwd when it is set.
func readFile(e env, path string) ([]byte, error) {
	if e.cwd != "" && !filepath.IsAbs(path) {
		path = filepath.Join(e.cwd, path)
	}
	data, err := util.ReadFile(e.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInternal, "cannot read %s", path)
	}
	return data, nil
}

func decodeDocument(f format, data []byte, opts ...jsend.Option) (document, error) {
	var doc document
	var err error
	switch f {
	case formatJSON:
		err = jsend.DecodeJSON(data, &doc, opts...)
	case formatYAML:
		err = jsend.DecodeYAML(data, &doc, opts...)
	case formatCBOR:
		err = jsend.DecodeCBOR(data, &doc, opts...)
	default:
		err = errors.Newf(errors.CodeInvalidConfig, "unsupported format %q", f)
	}
	return doc, err
}

func encodeDocument(f format, doc document, opts ...jsend.Option) ([]byte, error) {
	switch f {
	case formatJSON:
		return jsend.EncodeJSON(doc, opts...)
	case formatYAML:
		return jsend.EncodeYAML(doc, opts...)
	case formatCBOR:
		return jsend.EncodeCBOR(doc, opts...)
	}
	return nil, errors.Newf(errors.CodeInvalidConfig, "unsupported format %q", f)
}

func validateDocument(ctx context.Context, s *cue.Schema, f format, data []byte) error {
	switch f {
	case formatJSON:
		return s.ValidateJSON(ctx, data)
	case formatYAML:
		return s.ValidateYAML(ctx, data)
	case formatCBOR:
		return s.ValidateCBOR(ctx, data)
	}
	return errors.Newf(errors.CodeInvalidConfig, "unsupported format %q", f)
}
