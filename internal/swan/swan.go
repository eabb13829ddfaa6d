// Package swan ties the front end together: source text in, validated
// AST out. Callers that want finer control (token dumps, unchecked
// trees) use the lexer and parser packages directly.
package swan

import (
	"fmt"
	"os"

	"github.com/swan-lang/swan/internal/analyzer"
	cerr "github.com/swan-lang/swan/internal/errors"
	"github.com/swan-lang/swan/internal/lexer"
	"github.com/swan-lang/swan/internal/parser"
)

// Options controls optional analysis behavior.
type Options struct {
	// Strict enables the page-reachability check: every declared page
	// must be reachable from the entry page through navigation edges.
	Strict bool

	// Entry, when non-empty, is checked in place of the program's
	// declared entry page. The tree itself is left untouched. Used to
	// validate files against a project-level entry from swan.yaml.
	Entry string
}

// CheckFailure reports semantic errors found after a successful parse.
// The partial AST and full diagnostics remain available to callers that
// want to render them.
type CheckFailure struct {
	Program *parser.Program
	Errors  *cerr.CheckErrors
}

func (f *CheckFailure) Error() string {
	n := len(f.Errors.Errors())
	if n == 1 {
		return "1 semantic error"
	}
	return fmt.Sprintf("%d semantic errors", n)
}

// Parse lexes, parses, and checks a complete program. Lexical and
// syntactic errors fail fast with a positioned error; semantic errors
// are collected and returned together as a *CheckFailure. The returned
// program is non-nil whenever parsing succeeded, even on check failure.
func Parse(source, file string, opts Options) (*parser.Program, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, err
	}
	prog, err := parser.ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	aopts := analyzer.Options{Strict: opts.Strict, Entry: opts.Entry}
	if errs := analyzer.Analyze(prog, file, aopts); errs.HasErrors() {
		return prog, &CheckFailure{Program: prog, Errors: errs}
	}
	return prog, nil
}

// ParseFile reads path and parses its contents. The file name feeds
// diagnostic output.
func ParseFile(path string, opts Options) (*parser.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data), path, opts)
}
