// jsend validates, converts and inspects JSend-style envelope documents
// stored as JSON, YAML or CBOR.
//
// Usage:
//
//	jsend validate [--strict] [--schema] [--format F] FILE...
//	jsend convert --to F [--from F] FILE
//	jsend inspect [--format F] FILE
//	jsend schema [--strict] [--fail-shape S] [--code-mode M]
//
// Exit status is 0 on success, 1 when any document is rejected, and 2 on
// usage errors.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

// env carries the process surroundings a command runs in.
type env struct {
	fs     billy.Filesystem
	cwd    string
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitUsage)
	}
	e := env{
		fs:     osfs.New("/"),
		cwd:    cwd,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	os.Exit(run(os.Args[1:], e))
}

type command struct {
	summary string
	run     func(args []string, e env) int
}

var commands = map[string]command{
	"validate": {"decode documents and report every rejection", runValidate},
	"convert":  {"re-encode a document in another format", runConvert},
	"inspect":  {"print a document's status, message and code", runInspect},
	"schema":   {"print the CUE schema of the wire contract", runSchema},
}

var commandOrder = []string{"validate", "convert", "inspect", "schema"}

func run(args []string, e env) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(e.stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(e.stderr, "error: unknown command %q\n\n", args[0])
		printUsage(e.stderr)
		return exitUsage
	}
	return cmd.run(args[1:], e)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: jsend <command> [flags] [FILE...]\n\nCommands:\n")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(w, "\nRun 'jsend <command> --help' for command flags.\n")
}

// newLogger returns a text logger on stderr, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
