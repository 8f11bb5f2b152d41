/*
Package cue validates envelope documents against a CUE schema of the jsend
wire contract.

# Overview

The decoder in package jsend reports the first problem it meets. This package
checks a whole document against a CUE definition of the wire contract and
reports every violation at once, with field paths, which is what tooling and
CI checks want.

The schema is generated from a jsend.Config, so it follows the same choices
as the codec:

  - Strict: variant definitions are closed and reject unknown fields
  - FailShape: fail carries message/code/data, or data only
  - CodeMode: code is any number, or an int64-ranged integer

# Example

	schema, err := cue.NewSchema(jsend.WithStrict())
	if err != nil {
	    return err
	}

	if err := schema.ValidateJSON(ctx, body); err != nil {
	    for _, issue := range cue.Issues(err) {
	        fmt.Printf("%s: %s\n", strings.Join(issue.Path, "."), issue.Message)
	    }
	}

# Caller Responsibilities

A Schema owns its CUE context and serialises access to it, so one Schema may
be shared between goroutines. Use context.WithTimeout to bound validation of
untrusted documents.
*/
package cue
