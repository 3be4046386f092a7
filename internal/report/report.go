// Package report formats and collects diagnostics shared by every pipeline
// stage (scanner, parser, interpreter) so they all speak the same
// "[line N] Error <location>: <message>" dialect on stderr.
package report

import (
	"fmt"
	"io"
)

// Sink accumulates whether any error has been reported since it was last
// reset, independent of how many individual diagnostics came through it.
// The scanner reports but keeps going (spec §4.1); the parser and
// interpreter report and stop (spec §7) — Sink just tracks the flag either
// way and lets the caller decide what "had an error" means for them.
type Sink struct {
	out    io.Writer
	hadErr bool
}

// New creates a Sink that writes formatted diagnostics to out.
func New(out io.Writer) *Sink {
	return &Sink{out: out}
}

// Report writes err's already-formatted "[line N] Error ...: message" text
// (scan, parse, and runtime errors all implement this via their Error()
// methods) and marks the sink as having seen an error.
func (s *Sink) Report(err error) {
	s.hadErr = true
	fmt.Fprintln(s.out, err.Error())
}

// HadError reports whether any diagnostic has been recorded since Reset.
func (s *Sink) HadError() bool {
	return s.hadErr
}

// Reset clears the error flag, used by the REPL between lines (spec §7:
// "the flag is cleared, and the loop continues").
func (s *Sink) Reset() {
	s.hadErr = false
}
