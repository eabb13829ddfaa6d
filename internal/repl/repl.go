// Package repl implements the interactive swan session: type a program
// (or fragment), get tokens, an AST, or check diagnostics back.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/swan-lang/swan/internal/cli"
	"github.com/swan-lang/swan/internal/parser"
	"github.com/swan-lang/swan/internal/swan"
)

const (
	historyFile = ".swan_history"
	promptMain  = "swan> "
	promptCont  = "  ... "
)

const helpText = `Enter a swan program; an unbalanced { continues on the next line.

Commands:
  :help           Show this help
  :load <file>    Load a .swan file into the buffer and check it
  :check          Re-check the last accepted program
  :ast [yaml]     Print the last accepted program's AST
  :strict         Toggle strict mode (page reachability)
  :reset          Forget the last accepted program
  :quit           Exit`

// Session holds REPL state across inputs.
type Session struct {
	strict  bool
	lastSrc string
	last    *parser.Program
	out     io.Writer
}

// New returns a session writing its output to out.
func New(out io.Writer, strict bool) *Session {
	return &Session{strict: strict, out: out}
}

// Run drives the interactive loop until :quit or EOF. The exit code is
// 0 in both cases; input errors inside the loop are reported and do not
// terminate the session.
func (s *Session) Run() int {
	fmt.Fprintln(s.out, "swan repl. Ctrl+D or :quit to exit, :help for commands.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		input, ok := readInput(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(s.out)
			return 0
		}
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if quit := s.command(trimmed); quit {
				return 0
			}
			continue
		}

		s.eval(input, "<repl>")
	}
}

// command dispatches a :-prefixed line. Returns true on :quit.
func (s *Session) command(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(s.out, helpText)
	case ":strict":
		s.strict = !s.strict
		if s.strict {
			fmt.Fprintln(s.out, "strict mode on")
		} else {
			fmt.Fprintln(s.out, "strict mode off")
		}
	case ":reset":
		s.lastSrc = ""
		s.last = nil
		fmt.Fprintln(s.out, "session reset")
	case ":load":
		if arg == "" {
			fmt.Fprintln(s.out, cli.Error("usage: :load <file.swan>"))
			break
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			fmt.Fprintln(s.out, cli.Error(err.Error()))
			break
		}
		s.eval(string(data), arg)
	case ":check":
		if s.lastSrc == "" {
			fmt.Fprintln(s.out, cli.Warn("nothing to check; enter a program first"))
			break
		}
		s.eval(s.lastSrc, "<repl>")
	case ":ast":
		if s.last == nil {
			fmt.Fprintln(s.out, cli.Warn("no accepted program; enter one first"))
			break
		}
		var data []byte
		var err error
		if arg == "yaml" {
			data, err = parser.ToYAML(s.last)
		} else {
			data, err = parser.ToJSON(s.last)
		}
		if err != nil {
			fmt.Fprintln(s.out, cli.Error(err.Error()))
			break
		}
		fmt.Fprintln(s.out, string(data))
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :help for commands.\n", name)
	}
	return false
}

// eval parses and checks one program, printing diagnostics or a success
// line. Accepted programs replace the session's last program even when
// semantic checks fail, so :ast can inspect the tree behind the errors.
func (s *Session) eval(source, file string) {
	prog, err := swan.Parse(source, file, swan.Options{Strict: s.strict})
	if err != nil {
		var fail *swan.CheckFailure
		if errors.As(err, &fail) {
			s.lastSrc = source
			s.last = fail.Program
			fmt.Fprintln(s.out, fail.Errors.Format())
			return
		}
		fmt.Fprintln(s.out, cli.Error(err.Error()))
		return
	}
	s.lastSrc = source
	s.last = prog
	fmt.Fprintln(s.out, cli.Success(summarize(prog)))
}

func summarize(prog *parser.Program) string {
	return fmt.Sprintf("app %q ok: %d page(s), %d component(s)",
		prog.App.Name, len(prog.Pages), len(prog.Components))
}

// readInput collects one logical input from the prompt. A line leaving
// braces unbalanced continues on the next prompt; command lines and
// balanced lines complete immediately. Returns false on EOF.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	depth := 0

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		depth += braceDelta(line)

		if depth <= 0 {
			return b.String(), true
		}
	}
}

// braceDelta counts net brace nesting on a line, skipping braces inside
// string literals and after // comments.
func braceDelta(line string) int {
	depth := 0
	inStr := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inStr {
			if c == '"' {
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return depth
			}
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
