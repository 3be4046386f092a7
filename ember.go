// Package ember is the embeddable entry point for the language described
// in spec.md: Run scans, parses, and interprets a complete program. The
// command-line driver (cmd/ember) and the REPL are the only consumers
// outside this package; everything about argument parsing and file I/O
// is their concern, not this package's (spec.md §1, "external collaborators").
package ember

import (
	"io"

	"github.com/kristofer/ember/internal/interpreter"
	"github.com/kristofer/ember/internal/lexer"
	"github.com/kristofer/ember/internal/parser"
)

// Exit codes, matching spec.md §6 and §7's propagation policy.
const (
	ExitOK      = 0
	ExitDataErr = 65 // scan, parse, or runtime error
)

// Run scans, parses, and interprets source, writing print output to out.
// It returns nil on success, an error listing every scan failure, or the
// first parse/runtime error encountered — the caller (file-mode driver) reports that error to
// stderr and exits with ExitDataErr, per spec.md §6's "diagnostics go to
// stderr" and §7's propagation policy.
func Run(source string, out io.Writer) error {
	tokens, err := lexer.New(source).Scan()
	if err != nil {
		return err
	}

	stmts, err := parser.New(tokens).Parse()
	if err != nil {
		return err
	}

	return interpreter.New(out, false).Interpret(stmts)
}

// Session is a persistent REPL: each line is scanned, parsed, and
// interpreted in the same global environment, so a variable or function
// defined on one line is visible on the next (spec.md §6's REPL contract,
// plus the bare-expression echo supplemented in SPEC_FULL.md).
type Session struct {
	in *interpreter.Interpreter
}

// NewSession creates a REPL session that writes output to out.
func NewSession(out io.Writer) *Session {
	return &Session{in: interpreter.New(out, true)}
}

// Eval scans, parses, and interprets one line (or several statements) of
// input against the session's persistent environment.
func (s *Session) Eval(line string) error {
	tokens, err := lexer.New(line).Scan()
	if err != nil {
		return err
	}
	stmts, err := parser.New(tokens).Parse()
	if err != nil {
		return err
	}
	return s.in.Interpret(stmts)
}
