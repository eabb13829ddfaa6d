package errors

import (
	"fmt"
	"strings"
)

// CheckError is a single semantic diagnostic, tagged with one of the
// SR-1 … SR-14 rule codes.
type CheckError struct {
	Code       string // "SR-6" style rule code
	Message    string // human-readable description
	File       string // source file path (empty if unknown)
	Line       int    // 0 if the violation has no precise token position
	Column     int    // 0 if unknown
	Suggestion string // e.g. `Did you mean "Home"?` (optional)
}

// Format returns a single-line representation suitable for terminal
// output (without ANSI; the caller wraps with cli colors).
func (e *CheckError) Format() string {
	var b strings.Builder

	if e.File != "" {
		b.WriteString(e.File)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d:%d", e.Line, e.Column)
		}
		b.WriteString(" — ")
	} else if e.Line > 0 {
		fmt.Fprintf(&b, "line %d, column %d — ", e.Line, e.Column)
	}

	b.WriteString(e.Message)

	if e.Code != "" {
		b.WriteString(" [")
		b.WriteString(e.Code)
		b.WriteString("]")
	}

	return b.String()
}

// CheckErrors collects diagnostics produced during semantic analysis.
type CheckErrors struct {
	errors []*CheckError
	file   string // default file context
}

// New creates a CheckErrors collection scoped to a file.
func New(file string) *CheckErrors {
	return &CheckErrors{file: file}
}

// Add appends a diagnostic to the collection.
func (ce *CheckErrors) Add(err *CheckError) {
	if err.File == "" {
		err.File = ce.file
	}
	ce.errors = append(ce.errors, err)
}

// AddError records a violation with no precise source position
// (program-level rules such as a missing entry declaration).
func (ce *CheckErrors) AddError(code, message string) {
	ce.Add(&CheckError{Code: code, Message: message})
}

// AddErrorAt records a violation at a source position.
func (ce *CheckErrors) AddErrorAt(code, message string, line, column int) {
	ce.Add(&CheckError{Code: code, Message: message, Line: line, Column: column})
}

// AddErrorWithSuggestion records a positioned violation with a
// "did you mean" suggestion.
func (ce *CheckErrors) AddErrorWithSuggestion(code, message, suggestion string, line, column int) {
	ce.Add(&CheckError{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Line:       line,
		Column:     column,
	})
}

// HasErrors returns true if any diagnostic was collected.
func (ce *CheckErrors) HasErrors() bool {
	return len(ce.errors) > 0
}

// Errors returns every diagnostic in the collection.
func (ce *CheckErrors) Errors() []*CheckError {
	return ce.errors
}

// Format returns a human-friendly multiline string of all diagnostics.
func (ce *CheckErrors) Format() string {
	var b strings.Builder
	for i, e := range ce.errors {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "✗ %s", e.Format())
		if e.Suggestion != "" {
			fmt.Fprintf(&b, "\n  suggestion: %s", e.Suggestion)
		}
	}
	return b.String()
}
