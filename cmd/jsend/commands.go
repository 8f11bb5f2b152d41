package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmgilman/go/jsend"
	"github.com/jmgilman/go/jsend/cue"
	"github.com/jmgilman/go/jsend/errors"
)

// configFlags are the codec settings shared by every command.
type configFlags struct {
	strict    bool
	failShape string
	codeMode  string
	verbose   bool
}

func (c *configFlags) addFlags(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&c.strict, "strict", false, "reject fields outside the variant's field set")
	flagSet.StringVar(&c.failShape, "fail-shape", string(jsend.FailMessage), "fail variant shape: message or payload")
	flagSet.StringVar(&c.codeMode, "code-mode", string(jsend.CodeNumber), "code representation: number or int64")
	flagSet.BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")
}

func (c *configFlags) options() ([]jsend.Option, error) {
	shape, err := jsend.ParseFailShape(c.failShape)
	if err != nil {
		return nil, err
	}
	mode, err := jsend.ParseCodeMode(c.codeMode)
	if err != nil {
		return nil, err
	}
	opts := []jsend.Option{jsend.WithFailShape(shape), jsend.WithCodeMode(mode)}
	if c.strict {
		opts = append(opts, jsend.WithStrict())
	}
	return opts, nil
}

// parseFlags parses args, reporting whether the command should go on and,
// if not, the exit status to return.
func parseFlags(flagSet *pflag.FlagSet, args []string, e env) (bool, int) {
	flagSet.SetOutput(e.stderr)
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return false, exitOK
		}
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return false, exitUsage
	}
	return true, exitOK
}

func usageError(e env, format string, args ...any) int {
	fmt.Fprintf(e.stderr, "error: "+format+"\n", args...)
	return exitUsage
}

func runValidate(args []string, e env) int {
	var cfg configFlags
	var useSchema bool
	var formatFlag string

	flagSet := pflag.NewFlagSet("jsend validate", pflag.ContinueOnError)
	cfg.addFlags(flagSet)
	flagSet.BoolVar(&useSchema, "schema", false, "also check each document against the CUE wire schema")
	flagSet.StringVarP(&formatFlag, "format", "f", "", "document format (default: from file extension)")
	if ok, code := parseFlags(flagSet, args, e); !ok {
		return code
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		return usageError(e, "validate requires at least one FILE")
	}

	opts, err := cfg.options()
	if err != nil {
		return usageError(e, "%v", err)
	}
	logger := e.loggerFor(cfg.verbose)

	var schema *cue.Schema
	if useSchema {
		if schema, err = cue.NewSchema(opts...); err != nil {
			return usageError(e, "%v", err)
		}
	}

	ctx := context.Background()
	rejected := 0
	for _, path := range paths {
		logger.Debug("validating document", "path", path)

		status, err := validateFile(ctx, e, schema, path, formatFlag, opts)
		if err != nil {
			rejected++
			fmt.Fprintf(e.stdout, "FAIL %s: %v\n", path, err)
			for _, issue := range cue.Issues(err) {
				fmt.Fprintf(e.stdout, "     %s\n", issue)
			}
			logger.Debug("document rejected",
				"path", path,
				"code", errors.GetCode(err),
				"classification", errors.GetClassification(err),
			)
			continue
		}
		fmt.Fprintf(e.stdout, "ok   %s (%s)\n", path, status)
	}

	logger.Info("validation finished", "documents", len(paths), "rejected", rejected)
	if rejected > 0 {
		return exitRejected
	}
	return exitOK
}

func validateFile(ctx context.Context, e env, schema *cue.Schema, path, formatFlag string, opts []jsend.Option) (jsend.Status, error) {
	f, err := detectFormat(path, formatFlag)
	if err != nil {
		return "", err
	}
	data, err := readFile(e, path)
	if err != nil {
		return "", err
	}
	if schema != nil {
		if err := validateDocument(ctx, schema, f, data); err != nil {
			return "", err
		}
	}
	doc, err := decodeDocument(f, data, opts...)
	if err != nil {
		return "", err
	}
	return doc.Status(), nil
}

func runConvert(args []string, e env) int {
	var cfg configFlags
	var from, to string

	flagSet := pflag.NewFlagSet("jsend convert", pflag.ContinueOnError)
	cfg.addFlags(flagSet)
	flagSet.StringVar(&from, "from", "", "input format (default: from file extension)")
	flagSet.StringVar(&to, "to", "", "output format: json, yaml or cbor")
	if ok, code := parseFlags(flagSet, args, e); !ok {
		return code
	}

	if flagSet.NArg() != 1 {
		return usageError(e, "convert requires exactly one FILE")
	}
	if to == "" {
		return usageError(e, "convert requires --to")
	}
	path := flagSet.Arg(0)

	opts, err := cfg.options()
	if err != nil {
		return usageError(e, "%v", err)
	}
	inFormat, err := detectFormat(path, from)
	if err != nil {
		return usageError(e, "%v", err)
	}
	outFormat, err := parseFormat(to)
	if err != nil {
		return usageError(e, "%v", err)
	}
	logger := e.loggerFor(cfg.verbose)

	data, err := readFile(e, path)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return exitRejected
	}
	doc, err := decodeDocument(inFormat, data, opts...)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %s: %v\n", path, err)
		return exitRejected
	}
	out, err := encodeDocument(outFormat, doc, opts...)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %s: %v\n", path, err)
		return exitRejected
	}

	logger.Debug("converted document", "path", path, "from", inFormat, "to", outFormat, "bytes", len(out))
	if _, err := e.stdout.Write(out); err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return exitRejected
	}
	if outFormat == formatJSON {
		fmt.Fprintln(e.stdout)
	}
	return exitOK
}

func runInspect(args []string, e env) int {
	var cfg configFlags
	var formatFlag string

	flagSet := pflag.NewFlagSet("jsend inspect", pflag.ContinueOnError)
	cfg.addFlags(flagSet)
	flagSet.StringVarP(&formatFlag, "format", "f", "", "document format (default: from file extension)")
	if ok, code := parseFlags(flagSet, args, e); !ok {
		return code
	}

	if flagSet.NArg() != 1 {
		return usageError(e, "inspect requires exactly one FILE")
	}
	path := flagSet.Arg(0)

	opts, err := cfg.options()
	if err != nil {
		return usageError(e, "%v", err)
	}
	f, err := detectFormat(path, formatFlag)
	if err != nil {
		return usageError(e, "%v", err)
	}

	data, err := readFile(e, path)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return exitRejected
	}
	doc, err := decodeDocument(f, data, opts...)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %s: %v\n", path, err)
		return exitRejected
	}

	fmt.Fprint(e.stdout, describe(doc))
	return exitOK
}

// describe renders one "key: value" line per field present in doc.
func describe(doc document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "status: %s\n", doc.Status())

	if data, ok := doc.SuccessValue(); ok {
		fmt.Fprintf(&b, "data: %v\n", data)
		return b.String()
	}

	fields, ok := doc.FailValue()
	if !ok {
		fields, _ = doc.ErrorValue()
	}
	if fields.Message != "" || !doc.IsFail() {
		fmt.Fprintf(&b, "message: %s\n", fields.Message)
	}
	if fields.Code != nil {
		fmt.Fprintf(&b, "code: %s\n", fields.Code)
	}
	if fields.Data != nil {
		fmt.Fprintf(&b, "data: %v\n", *fields.Data)
	}
	return b.String()
}

func runSchema(args []string, e env) int {
	var cfg configFlags

	flagSet := pflag.NewFlagSet("jsend schema", pflag.ContinueOnError)
	cfg.addFlags(flagSet)
	if ok, code := parseFlags(flagSet, args, e); !ok {
		return code
	}
	if flagSet.NArg() != 0 {
		return usageError(e, "schema takes no arguments")
	}

	opts, err := cfg.options()
	if err != nil {
		return usageError(e, "%v", err)
	}
	schema, err := cue.NewSchema(opts...)
	if err != nil {
		fmt.Fprintf(e.stderr, "error: %v\n", err)
		return exitRejected
	}
	fmt.Fprint(e.stdout, schema.Source())
	return exitOK
}

func (e env) loggerFor(verbose bool) *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return newLogger(e.stderr, verbose)
}
