// Command ember is the command-line driver for the language: it reads a
// source file and runs it, or drops into a line-at-a-time REPL. Per
// spec.md §1, everything in this file is plumbing around the single
// interpreter entry point exposed by the root "ember" package.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/kristofer/ember"
	"github.com/kristofer/ember/internal/report"
)

const version = "0.1.0"

var prompt = color.New(color.FgCyan, color.Bold)

func main() {
	switch len(os.Args) {
	case 1:
		runREPL()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: ember [script]")
		os.Exit(64)
	}
}

// runFile reads a single source file fully and runs it. Any scan, parse,
// or runtime error exits the process with code 65 (spec.md §6).
func runFile(path string) {
	sink := report.New(os.Stderr)

	data, err := os.ReadFile(path)
	if err != nil {
		sink.Report(fmt.Errorf("Error reading file: %v", err))
		os.Exit(ember.ExitDataErr)
	}
	if err := ember.Run(string(data), os.Stdout); err != nil {
		sink.Report(err)
		os.Exit(ember.ExitDataErr)
	}
	os.Exit(ember.ExitOK)
}

// runREPL reads stdin line by line; each non-empty line is run as a
// complete program against a persistent session, so declarations from one
// line remain visible on the next. A line's error is reported and the
// sink's flag is reset before the next prompt — the REPL never exits on a
// bad line (spec.md §6, §7).
func runREPL() {
	prompt.Printf("ember %s\n", version)
	sink := report.New(os.Stderr)
	session := ember.NewSession(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		prompt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := session.Eval(line); err != nil {
			sink.Report(err)
			sink.Reset()
		}
	}
}
